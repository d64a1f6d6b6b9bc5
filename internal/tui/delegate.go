package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/wedplan/internal/ui"
)

// row adapts a planner record to bubbles/list.Item.
type row struct {
	id    string
	text  string
	left  string // rendered before text, already styled
	right string // rendered after text, already styled
	style lipgloss.Style
	// draw, when set, renders the whole line at paint time. Used for state
	// that depends on the clock.
	draw func() string
}

// Implement list.Item interface
func (r row) FilterValue() string { return r.text }

// Custom delegate to control how items render (single line)
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	line := r.left + r.style.Render(r.text) + r.right
	if r.draw != nil {
		line = r.draw()
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render("> ")
	}
	if m.Width() > 4 {
		line = ansi.Truncate(line, m.Width()-2, "…")
	}
	fmt.Fprint(w, prefix+line)
}
