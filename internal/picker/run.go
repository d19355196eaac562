// ABOUTME: Program construction and the terminal session lifecycle
// ABOUTME: Raw mode, alternate screen, and mouse capture are scoped to Run

package picker

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvanders/pickline/internal/config"
	"github.com/mvanders/pickline/internal/log"
)

// ErrCancelled reports that the user ended the session with the cancel
// action rather than confirming a choice.
var ErrCancelled = errors.New("user cancelled")

// Run owns the terminal for the duration of one picker session. Input
// events come from the controlling terminal (stdin carries the candidate
// lines and is already consumed); the rendered frames go to stderr so
// stdout stays reserved for the chosen line. Raw mode, the alternate
// screen, and mouse capture are all released on every exit path,
// including propagated errors.
func Run(candidates []string, cfg *config.Settings) (string, error) {
	tty, err := openTTY()
	if err != nil {
		return "", fmt.Errorf("opening terminal: %w", err)
	}
	defer tty.Close() //nolint:errcheck

	m := New(candidates, cfg)
	p := tea.NewProgram(
		m,
		tea.WithInput(tty),
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("terminal session: %w", err)
	}

	fm, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("unexpected final model %T", final)
	}
	if choice, confirmed := fm.Choice(); confirmed {
		log.Debug("session confirmed", "choice", choice)
		return choice, nil
	}
	log.Debug("session cancelled")
	return "", ErrCancelled
}
