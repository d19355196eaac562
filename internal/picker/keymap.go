// ABOUTME: Key bindings for picker actions, built from config
// ABOUTME: Everything not bound here falls through to the query input

package picker

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/mvanders/pickline/internal/config"
)

// keyMap holds the bindings for the four picker actions.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	accept key.Binding
	cancel key.Binding
}

// newKeyMap builds bindings from the configured key names.
func newKeyMap(k config.Keys) keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys(k.Up...), key.WithHelp("↑", "move up")),
		down:   key.NewBinding(key.WithKeys(k.Down...), key.WithHelp("↓", "move down")),
		accept: key.NewBinding(key.WithKeys(k.Accept...), key.WithHelp("enter", "accept")),
		cancel: key.NewBinding(key.WithKeys(k.Cancel...), key.WithHelp("esc", "cancel")),
	}
}
