// ABOUTME: Entry point: read candidates from stdin, pick one, print it
// ABOUTME: Stdout carries only the chosen line; everything else goes to stderr

package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/mvanders/pickline/internal/config"
	"github.com/mvanders/pickline/internal/lines"
	"github.com/mvanders/pickline/internal/log"
	"github.com/mvanders/pickline/internal/picker"
)

var version = "dev"

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("pickline %s\n", version)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		if errors.Is(err, picker.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "user cancelled")
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	if args.debug != "" {
		closeLog, err := log.Enable(args.debug)
		if err != nil {
			return fmt.Errorf("enabling debug log: %w", err)
		}
		defer closeLog() //nolint:errcheck
	}

	// Candidates arrive on stdin; an interactive terminal there means
	// nothing was piped in.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("no input on stdin (try: ls | pickline)")
	}

	candidates, err := lines.Read(os.Stdin)
	if err != nil {
		return err
	}
	log.Debug("read candidates", "count", len(candidates))

	cfg, err := config.Load(args.config)
	if err != nil {
		return err
	}
	if args.prompt != "" {
		cfg.Prompt = args.prompt
	}

	choice, err := picker.Run(candidates, cfg)
	if err != nil {
		return err
	}

	// The chosen line is the entire stdout, with no trailing newline.
	fmt.Print(choice)
	return nil
}
