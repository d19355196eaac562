// ABOUTME: Optional YAML configuration for prompt, colors, and keybindings
// ABOUTME: Defaults mirror the classic behavior; a missing file is not an error

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Colors holds lipgloss color specs (ANSI 256 numbers or hex strings) for
// the rendered frame.
type Colors struct {
	SelectedFg string `yaml:"selected_fg,omitempty"`
	SelectedBg string `yaml:"selected_bg,omitempty"`
	CountFg    string `yaml:"count_fg,omitempty"`
}

// Keys maps picker actions to the key names accepted by bubbles/key
// (e.g. "up", "ctrl+p", "enter", "esc").
type Keys struct {
	Up     []string `yaml:"up,omitempty"`
	Down   []string `yaml:"down,omitempty"`
	Accept []string `yaml:"accept,omitempty"`
	Cancel []string `yaml:"cancel,omitempty"`
}

// Settings is the merged configuration for one picker session.
type Settings struct {
	Prompt string `yaml:"prompt,omitempty"`
	Colors Colors `yaml:"colors,omitempty"`
	Keys   Keys   `yaml:"keys,omitempty"`
}

// Default returns the built-in settings: arrow-key navigation, enter to
// accept, esc to cancel, and an inverted selected row.
func Default() *Settings {
	return &Settings{
		Prompt: "> ",
		Colors: Colors{
			CountFg: "241",
		},
		Keys: Keys{
			Up:     []string{"up", "ctrl+p"},
			Down:   []string{"down", "ctrl+n"},
			Accept: []string{"enter"},
			Cancel: []string{"esc", "ctrl+c"},
		},
	}
}

// Load reads the config file at path (empty means DefaultPath) and merges
// it over the defaults. A missing file yields the defaults unchanged.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = DefaultPath()
	}

	base := Default()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}

	var file Settings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	merge(base, &file)
	return base, nil
}

// DefaultPath returns the per-user config file location, honoring the
// PICKLINE_CONFIG override.
func DefaultPath() string {
	if p := os.Getenv("PICKLINE_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pickline", "config.yaml")
}

// merge overrides base fields with non-zero values from overlay.
func merge(base, overlay *Settings) {
	if overlay.Prompt != "" {
		base.Prompt = overlay.Prompt
	}
	if overlay.Colors.SelectedFg != "" {
		base.Colors.SelectedFg = overlay.Colors.SelectedFg
	}
	if overlay.Colors.SelectedBg != "" {
		base.Colors.SelectedBg = overlay.Colors.SelectedBg
	}
	if overlay.Colors.CountFg != "" {
		base.Colors.CountFg = overlay.Colors.CountFg
	}
	if len(overlay.Keys.Up) > 0 {
		base.Keys.Up = overlay.Keys.Up
	}
	if len(overlay.Keys.Down) > 0 {
		base.Keys.Down = overlay.Keys.Down
	}
	if len(overlay.Keys.Accept) > 0 {
		base.Keys.Accept = overlay.Keys.Accept
	}
	if len(overlay.Keys.Cancel) > 0 {
		base.Keys.Cancel = overlay.Keys.Cancel
	}
}
