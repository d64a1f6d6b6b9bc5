package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/wedplan/internal/links"
	"github.com/Makepad-fr/wedplan/internal/model"
	"github.com/Makepad-fr/wedplan/internal/ui"
)

type contactsScreen struct{ base }

func newContactsScreen(d *Deps) *contactsScreen {
	s := &contactsScreen{base: newBase(d, keys.add, keys.open, keys.del)}
	s.reload = s.refresh
	s.refresh()
	return s
}

func (s *contactsScreen) title() string { return "Profissionais" }

func (s *contactsScreen) refresh() tea.Cmd {
	t := ui.Current()
	items := s.d.Planner.Contacts.Items()
	rows := make([]row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row{id: it.ID, text: it.Name, right: "  " + t.Accent.Render(it.Phone)})
	}
	s.list.Title = t.Title.Render("Lista de Profissionais")
	return s.setRows(rows)
}

func (s *contactsScreen) update(msg tea.Msg) tea.Cmd {
	if s.form != nil {
		return s.updateForm(msg)
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok || s.list.SettingFilter() {
		return s.updateList(msg)
	}
	ctx, contacts := s.d.Ctx, s.d.Planner.Contacts
	i := contacts.IndexOf(s.selected())

	switch {
	case key.Matches(k, keys.add):
		f := newForm("Novo contato",
			field{placeholder: "Nome do Profissional"},
			field{placeholder: "Número de Telefone (ex: 11999999999)", value: model.PhonePrefix, limit: model.MaxPhoneLen},
		)
		return s.openForm(f, func(v []string) (string, error) {
			text := "Contato adicionado"
			if similar := contacts.Similar(v[0]); len(similar) > 0 {
				text += ". Nome parecido já na lista: " + strings.Join(similar, ", ")
			}
			return text, contacts.Add(ctx, v[0], v[1])
		})
	case key.Matches(k, keys.open):
		u, err := contacts.WhatsAppURL(i)
		if err != nil {
			return nil
		}
		return openCmd(s.d.Opener, "o WhatsApp", u)
	case key.Matches(k, keys.del):
		return s.apply(contacts.Delete(ctx, i), "Contato removido")
	}
	return s.updateList(msg)
}

func (s *contactsScreen) view(width, height int) string { return s.render(width, height, "") }

// openCmd hands u to the link handler without blocking the update loop.
func openCmd(o links.Opener, label, u string) tea.Cmd {
	return func() tea.Msg {
		if err := links.Open(o, label, u); err != nil {
			return statusMsg{text: err.Error(), err: true}
		}
		return statusMsg{text: "Abrindo " + strings.TrimPrefix(label, "o ") + "..."}
	}
}
