package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/wedplan/internal/ui"
)

type menuEntry struct {
	label string
	tab   int
}

var homeMenu = []menuEntry{
	{"Lista de Tarefas", tabTasks},
	{"Lista de Convidados", tabGuests},
	{"Custos dos Profissionais", tabCosts},
	{"Contatos dos Profissionais", tabContacts},
	{"Datas Importantes", tabDates},
	{"Fale Conosco", tabAbout},
}

type homeScreen struct {
	d      *Deps
	cursor int
}

func newHomeScreen(d *Deps) *homeScreen { return &homeScreen{d: d} }

func (s *homeScreen) title() string    { return "Início" }
func (s *homeScreen) typing() bool     { return false }
func (s *homeScreen) refresh() tea.Cmd { return nil }

func (s *homeScreen) update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch k.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(homeMenu)-1 {
			s.cursor++
		}
	case "enter", " ":
		tab := homeMenu[s.cursor].tab
		return func() tea.Msg { return navigateMsg{tab: tab} }
	}
	return nil
}

func (s *homeScreen) view(width, height int) string {
	t := ui.Current()
	p := s.d.Planner

	lines := []string{t.Title.Render(s.d.Studio)}
	if s.d.Tagline != "" {
		lines = append(lines, t.Muted.Render(s.d.Tagline))
	}
	lines = append(lines, "")
	for i, e := range homeMenu {
		cursor := "  "
		label := e.label
		if i == s.cursor {
			cursor = t.Selected.Render("> ")
			label = t.Accent.Render(label)
		}
		lines = append(lines, cursor+label)
	}

	done, pending := p.Tasks.Stats()
	total, paid := p.Costs.Totals()
	lines = append(lines, "",
		t.Muted.Render(fmt.Sprintf("%d tarefas pendentes, %d concluídas", pending, done)),
		t.Muted.Render(fmt.Sprintf("%d convidados", p.Guests.Total())),
		t.Muted.Render(fmt.Sprintf("R$ %s pagos de R$ %s", paid.Fixed(), total.Fixed())),
		"",
		t.Help.Render("↑/↓ escolher • enter abrir • tab trocar aba • q sair"),
	)
	return strings.Join(lines, "\n")
}
