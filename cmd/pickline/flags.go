// ABOUTME: CLI flag parsing using the stdlib flag package
// ABOUTME: Everything here is optional; the picker works with no flags at all

package main

import "flag"

type cliArgs struct {
	prompt  string
	config  string
	debug   string
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.prompt, "prompt", "", "Prompt shown before the query (default from config)")
	flag.StringVar(&args.config, "config", "", "Config file path (default: $PICKLINE_CONFIG or the user config dir)")
	flag.StringVar(&args.debug, "debug", "", "Write debug logs to the given file")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
