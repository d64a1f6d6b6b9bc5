package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/wedplan/internal/ui"
)

type field struct {
	placeholder string
	value       string
	limit       int
}

// form is the inline input box used for add and edit.
type form struct {
	title  string
	inputs []textinput.Model
	focus  int
	err    string
}

func newForm(title string, fields ...field) *form {
	f := &form{title: title}
	for _, fl := range fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = fl.placeholder
		ti.CharLimit = 200
		if fl.limit > 0 {
			ti.CharLimit = fl.limit
		}
		ti.SetValue(fl.value)
		ti.CursorEnd()
		f.inputs = append(f.inputs, ti)
	}
	f.inputs[0].Focus()
	return f
}

func (f *form) values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = in.Value()
	}
	return out
}

func (f *form) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update returns submit when enter is pressed on the last field and cancel
// on esc.
func (f *form) update(msg tea.Msg) (submit, cancel bool, cmd tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return false, true, nil
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return false, false, nil
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return false, false, nil
		case "enter":
			if f.focus < len(f.inputs)-1 {
				f.setFocus(f.focus + 1)
				return false, false, nil
			}
			return true, false, nil
		}
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return false, false, cmd
}

func (f *form) view() string {
	t := ui.Current()
	title := f.title
	if f.err != "" {
		title += " - " + t.Error.Render(f.err)
	}
	lines := []string{title}
	for _, in := range f.inputs {
		lines = append(lines, in.View())
	}
	lines = append(lines, t.Help.Render("enter confirmar • tab próximo campo • esc cancelar"))
	return ui.PanelString(strings.Join(lines, "\n"))
}

// height is the number of terminal lines view() takes.
func (f *form) height() int { return len(f.inputs) + 4 }
