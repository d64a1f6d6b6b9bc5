package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/wedplan/internal/report"
	"github.com/Makepad-fr/wedplan/internal/ui"
)

type guestsScreen struct{ base }

func newGuestsScreen(d *Deps) *guestsScreen {
	s := &guestsScreen{base: newBase(d, keys.add, keys.inc, keys.dec, keys.del, keys.export)}
	s.reload = s.refresh
	s.refresh()
	return s
}

func (s *guestsScreen) title() string { return "Convidados" }

func (s *guestsScreen) refresh() tea.Cmd {
	t := ui.Current()
	items := s.d.Planner.Guests.Items()
	rows := make([]row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row{
			id:    it.ID,
			text:  it.Name,
			right: "  " + t.Muted.Render("−") + " " + t.Accent.Render(fmt.Sprint(it.Count)) + " " + t.Muted.Render("+"),
		})
	}
	s.list.Title = t.Title.Render("Lista de Convidados")
	return s.setRows(rows)
}

func (s *guestsScreen) update(msg tea.Msg) tea.Cmd {
	if s.form != nil {
		return s.updateForm(msg)
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok || s.list.SettingFilter() {
		return s.updateList(msg)
	}
	ctx, guests := s.d.Ctx, s.d.Planner.Guests
	i := guests.IndexOf(s.selected())

	switch {
	case key.Matches(k, keys.add):
		return s.openForm(newForm("Novo convidado", field{placeholder: "Digite o nome do convidado"}),
			func(v []string) (string, error) {
				text := "Convidado adicionado"
				if similar := guests.Similar(v[0]); len(similar) > 0 {
					text += ". Nome parecido já na lista: " + strings.Join(similar, ", ")
				}
				return text, guests.Add(ctx, v[0])
			})
	case key.Matches(k, keys.inc):
		return s.apply(guests.Increment(ctx, i), "")
	case key.Matches(k, keys.dec):
		_, err := guests.Decrement(ctx, i)
		return s.apply(err, "")
	case key.Matches(k, keys.del):
		return s.apply(guests.Delete(ctx, i), "Convidado removido")
	case key.Matches(k, keys.export):
		items := guests.Items()
		return exportCmd(s.d, "convidados", report.GuestFile, len(items), report.GuestReport(items))
	}
	return s.updateList(msg)
}

func (s *guestsScreen) view(width, height int) string {
	footer := ui.Current().Title.Render(fmt.Sprintf("Total de convidados: %d", s.d.Planner.Guests.Total()))
	return s.render(width, height, footer)
}
