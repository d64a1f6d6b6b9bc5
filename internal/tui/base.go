package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/wedplan/internal/planner"
	"github.com/Makepad-fr/wedplan/internal/ui"
)

// screen is one tab of the shell.
type screen interface {
	title() string
	update(msg tea.Msg) tea.Cmd
	view(width, height int) string
	// typing is true while keystrokes belong to an input.
	typing() bool
	refresh() tea.Cmd
}

// base is the list + inline form shared by the list screens.
type base struct {
	d      *Deps
	list   list.Model
	form   *form
	submit func([]string) (string, error)
	reload func() tea.Cmd
}

func newBase(d *Deps, binds ...key.Binding) base {
	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	t := ui.Current()
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Help
	l.Styles.PaginationStyle = t.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "itens")
	l.AdditionalShortHelpKeys = func() []key.Binding { return binds }
	l.AdditionalFullHelpKeys = func() []key.Binding { return binds }
	return base{d: d, list: l}
}

func (b *base) typing() bool { return b.form != nil || b.list.SettingFilter() }

// selected is the id of the highlighted record, "" when the list is empty.
func (b *base) selected() string {
	if r, ok := b.list.SelectedItem().(row); ok {
		return r.id
	}
	return ""
}

func (b *base) setRows(rows []row) tea.Cmd {
	idx := b.list.Index()
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = r
	}
	cmd := b.list.SetItems(items)
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	if idx >= 0 {
		b.list.Select(idx)
	}
	return cmd
}

// apply refreshes the rows after a controller call and reports the outcome.
func (b *base) apply(err error, okText string) tea.Cmd {
	return tea.Batch(b.reload(), result(err, okText))
}

func (b *base) openForm(f *form, submit func([]string) (string, error)) tea.Cmd {
	b.form = f
	b.submit = submit
	return textinput.Blink
}

func (b *base) updateForm(msg tea.Msg) tea.Cmd {
	submit, cancel, cmd := b.form.update(msg)
	switch {
	case cancel:
		b.form = nil
		return nil
	case submit:
		okText, err := b.submit(b.form.values())
		if errors.Is(err, planner.ErrBlank) || errors.Is(err, planner.ErrDate) {
			b.form.err = "preencha todos os campos"
			return nil
		}
		b.form = nil
		return b.apply(err, okText)
	}
	return cmd
}

// updateList forwards msg to the bubbles list.
func (b *base) updateList(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return cmd
}

func (b *base) render(width, height int, footer string) string {
	h := height
	if footer != "" {
		h -= lipgloss.Height(footer)
	}
	if b.form != nil {
		h -= b.form.height()
	}
	b.list.SetSize(width, max(h, 3))

	out := b.list.View()
	if footer != "" {
		out += "\n" + footer
	}
	if b.form != nil {
		out += "\n" + b.form.view()
	}
	return out
}
