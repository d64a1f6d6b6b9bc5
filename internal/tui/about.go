package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/wedplan/internal/ui"
)

// aboutScreen shows the studio's social links.
type aboutScreen struct {
	d      *Deps
	cursor int
}

func newAboutScreen(d *Deps) *aboutScreen { return &aboutScreen{d: d} }

func (s *aboutScreen) title() string    { return "Contato" }
func (s *aboutScreen) typing() bool     { return false }
func (s *aboutScreen) refresh() tea.Cmd { return nil }

func (s *aboutScreen) update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok || len(s.d.Socials) == 0 {
		return nil
	}
	switch k.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.d.Socials)-1 {
			s.cursor++
		}
	case "enter", "o":
		sc := s.d.Socials[s.cursor]
		return openCmd(s.d.Opener, "o "+sc.Label, sc.URL)
	}
	return nil
}

func (s *aboutScreen) view(width, height int) string {
	t := ui.Current()
	lines := []string{
		t.Title.Render("Fale Conosco"),
		t.Muted.Render("Siga " + s.d.Studio + " nas redes sociais"),
		"",
	}
	if len(s.d.Socials) == 0 {
		lines = append(lines, t.Muted.Render("Nenhum link configurado."))
	}
	for i, sc := range s.d.Socials {
		cursor := "  "
		if i == s.cursor {
			cursor = t.Selected.Render("> ")
		}
		lines = append(lines, cursor+t.Accent.Render(sc.Label)+"  "+t.Muted.Render(sc.URL))
	}
	lines = append(lines, "", t.Help.Render("↑/↓ escolher • enter abrir"))
	return strings.Join(lines, "\n")
}
