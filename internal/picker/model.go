// ABOUTME: Bubble Tea model for the interactive line picker
// ABOUTME: One query row plus a scrollable result list with a highlighted selection

package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvanders/pickline/internal/config"
	"github.com/mvanders/pickline/internal/filter"
	"github.com/mvanders/pickline/internal/log"
	"github.com/mvanders/pickline/internal/textwidth"
)

// noSelection marks the state where no result row is highlighted.
const noSelection = -1

// Model holds the full picker state. Value semantics throughout; every
// Update returns a modified copy.
type Model struct {
	input  textinput.Model
	keys   keyMap
	styles frameStyles

	candidates []string
	filtered   []string
	selected   int
	scrollOff  int

	width  int
	height int

	choice    string
	confirmed bool
	cancelled bool
}

// New builds a picker over the given candidates. The candidate slice is
// never mutated; filtered views reference it by value.
func New(candidates []string, cfg *config.Settings) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.Focus()

	m := Model{
		input:      ti,
		keys:       newKeyMap(cfg.Keys),
		styles:     newStyles(cfg.Colors),
		candidates: candidates,
		selected:   noSelection,
	}
	m.refilter()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update dispatches one input event, then recomputes the filtered list and
// reconciles the selection so every rendered frame sees consistent state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.cancel):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.accept):
			if m.selected != noSelection {
				m.choice = m.filtered[m.selected]
				m.confirmed = true
				log.Debug("confirmed", "index", m.selected)
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.up):
			m.moveUp()
			return m, nil

		case key.Matches(msg, m.keys.down):
			m.moveDown()
			return m, nil

		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.refilter()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-1, 1)
		m.adjustScroll()
		return m, nil

	case tea.MouseMsg:
		// Pointer events are captured but carry no picker semantics.
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// View renders the query row and the visible window of results.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.inputView())

	h := m.listHeight()
	end := min(m.scrollOff+h, len(m.filtered))
	for i := m.scrollOff; i < end; i++ {
		b.WriteByte('\n')
		row := m.filtered[i]
		if m.width > 0 {
			row = textwidth.Truncate(row, m.width)
		}
		if i == m.selected {
			row = m.styles.selected.Render(row)
		}
		b.WriteString(row)
	}

	return b.String()
}

// Choice returns the confirmed candidate, if any.
func (m Model) Choice() (string, bool) {
	return m.choice, m.confirmed
}

// Cancelled reports whether the session ended with the cancel action.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// refilter recomputes the filtered list for the current query and
// reconciles the selection against it: clamp a stale index, select the
// first row when nothing was selected, drop the selection when the list
// is empty.
func (m *Model) refilter() {
	m.filtered = filter.Apply(m.input.Value(), m.candidates)

	switch {
	case len(m.filtered) == 0:
		m.selected = noSelection
	case m.selected == noSelection:
		m.selected = 0
	case m.selected >= len(m.filtered):
		m.selected = len(m.filtered) - 1
	}
	m.adjustScroll()
}

// moveUp steps the selection toward the top without wrapping. From the
// unselected state it jumps to the last row.
func (m *Model) moveUp() {
	switch {
	case m.selected > 0:
		m.selected--
	case m.selected == noSelection && len(m.filtered) > 0:
		m.selected = len(m.filtered) - 1
	}
	m.adjustScroll()
}

// moveDown steps the selection toward the bottom without wrapping. From
// the unselected state it jumps to the first row.
func (m *Model) moveDown() {
	switch {
	case m.selected != noSelection && m.selected+1 < len(m.filtered):
		m.selected++
	case m.selected == noSelection && len(m.filtered) > 0:
		m.selected = 0
	}
	m.adjustScroll()
}

// adjustScroll keeps the highlighted row inside the visible window.
func (m *Model) adjustScroll() {
	h := m.listHeight()
	if h <= 0 {
		m.scrollOff = 0
		return
	}
	if maxOff := max(len(m.filtered)-h, 0); m.scrollOff > maxOff {
		m.scrollOff = maxOff
	}
	if m.selected == noSelection {
		return
	}
	if m.selected < m.scrollOff {
		m.scrollOff = m.selected
	}
	if m.selected >= m.scrollOff+h {
		m.scrollOff = m.selected - h + 1
	}
}

// listHeight is the number of result rows below the query row. Before the
// first WindowSizeMsg arrives the list is unbounded, which keeps headless
// use working.
func (m Model) listHeight() int {
	if m.height <= 0 {
		return len(m.filtered)
	}
	return max(m.height-1, 0)
}

// inputView renders the query row with a right-aligned matched/total
// count when there is room for it.
func (m Model) inputView() string {
	iv := m.input.View()
	if m.width <= 0 {
		return iv
	}

	count := fmt.Sprintf("%d/%d", len(m.filtered), len(m.candidates))
	gap := m.width - lipgloss.Width(iv) - len(count) - 1
	if gap < 1 {
		return iv
	}
	return iv + strings.Repeat(" ", gap) + m.styles.count.Render(count)
}
