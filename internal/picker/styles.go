// ABOUTME: Lipgloss styles for the picker frame, built from config colors
// ABOUTME: Falls back to reversed video when no selection colors are set

package picker

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mvanders/pickline/internal/config"
)

type frameStyles struct {
	selected lipgloss.Style
	count    lipgloss.Style
}

func newStyles(c config.Colors) frameStyles {
	selected := lipgloss.NewStyle()
	switch {
	case c.SelectedFg == "" && c.SelectedBg == "":
		selected = selected.Reverse(true)
	default:
		if c.SelectedFg != "" {
			selected = selected.Foreground(lipgloss.Color(c.SelectedFg))
		}
		if c.SelectedBg != "" {
			selected = selected.Background(lipgloss.Color(c.SelectedBg))
		}
	}

	count := lipgloss.NewStyle()
	if c.CountFg != "" {
		count = count.Foreground(lipgloss.Color(c.CountFg))
	}

	return frameStyles{
		selected: selected,
		count:    count,
	}
}
