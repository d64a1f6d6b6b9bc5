package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/wedplan/internal/model"
	"github.com/Makepad-fr/wedplan/internal/planner"
	"github.com/Makepad-fr/wedplan/internal/ui"
)

// datesScreen lists appointments. Its add mode pairs a name input with the
// calendar instead of the generic form.
type datesScreen struct {
	base
	adding bool
	name   textinput.Model
	cal    calendar
	onGrid bool
	addErr string
}

func newDatesScreen(d *Deps) *datesScreen {
	s := &datesScreen{base: newBase(d, keys.add, keys.del)}
	s.reload = s.refresh
	s.refresh()
	return s
}

func (s *datesScreen) title() string { return "Datas" }

func (s *datesScreen) typing() bool { return s.adding || s.base.typing() }

func (s *datesScreen) refresh() tea.Cmd {
	items := s.d.Planner.Dates.Items()
	rows := make([]row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row{
			id:   it.ID,
			text: it.Name,
			draw: func() string { return appointmentLine(it, s.d) },
		})
	}
	s.list.Title = ui.Current().Title.Render("Datas Importantes")
	return s.setRows(rows)
}

// appointmentLine is rendered at paint time so a date turns past while the
// screen is open.
func appointmentLine(a model.Appointment, d *Deps) string {
	t := ui.Current()
	mark, style := t.SymUpcoming, t.Success
	if a.IsPast(d.Clock()) {
		mark, style = t.SymPast, t.Error
	}
	return style.Render(mark) + " " + a.Name + "  " + t.Muted.Render(a.Date)
}

func (s *datesScreen) startAdd() tea.Cmd {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Nome do evento"
	ti.CharLimit = 200
	ti.Focus()
	s.name = ti
	s.cal = newCalendar(s.d.Clock())
	s.adding, s.onGrid, s.addErr = true, false, ""
	return textinput.Blink
}

func (s *datesScreen) updateAdd(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return cmd
	}
	switch {
	case key.Matches(k, keys.back):
		s.adding = false
		return nil
	case key.Matches(k, keys.focusSwitch), k.String() == "shift+tab":
		s.onGrid = !s.onGrid
		if s.onGrid {
			s.name.Blur()
			return nil
		}
		return s.name.Focus()
	}

	if s.onGrid {
		if s.cal.update(k) {
			s.addErr = ""
		}
		return nil
	}
	if k.String() == "enter" {
		err := s.d.Planner.Dates.Add(s.d.Ctx, s.name.Value(), s.cal.selected)
		if errors.Is(err, planner.ErrBlank) || errors.Is(err, planner.ErrDate) {
			s.addErr = "preencha todos os campos"
			return nil
		}
		s.adding = false
		return s.apply(err, "Evento adicionado")
	}
	var cmd tea.Cmd
	s.name, cmd = s.name.Update(msg)
	return cmd
}

func (s *datesScreen) update(msg tea.Msg) tea.Cmd {
	if s.adding {
		return s.updateAdd(msg)
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok || s.list.SettingFilter() {
		return s.updateList(msg)
	}
	dates := s.d.Planner.Dates
	switch {
	case key.Matches(k, keys.add):
		return s.startAdd()
	case key.Matches(k, keys.del):
		return s.apply(dates.Delete(s.d.Ctx, dates.IndexOf(s.selected())), "Evento removido")
	}
	return s.updateList(msg)
}

func (s *datesScreen) addView() string {
	t := ui.Current()
	title := "Novo evento"
	if s.addErr != "" {
		title += " - " + t.Error.Render(s.addErr)
	}
	picked := t.Muted.Render("nenhuma data escolhida")
	if s.cal.selected != "" {
		picked = t.Accent.Render(s.cal.selected)
	}
	grid := s.cal.view(s.d.Planner.Dates.Marked(s.d.Clock()), s.onGrid)
	help := t.Help.Render("tab nome/calendário • setas mover • [ ] mês • espaço escolher • enter salvar • esc cancelar")
	return ui.PanelString(strings.Join([]string{title, s.name.View(), "Data: " + picked, "", grid, help}, "\n"))
}

func (s *datesScreen) view(width, height int) string {
	if !s.adding {
		return s.render(width, height, "")
	}
	panel := s.addView()
	s.list.SetSize(width, max(height-lipgloss.Height(panel), 3))
	return s.list.View() + "\n" + panel
}
