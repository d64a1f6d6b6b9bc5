package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/wedplan/internal/ui"
)

const (
	tabHome = iota
	tabTasks
	tabGuests
	tabCosts
	tabContacts
	tabDates
	tabAbout
)

// Model is the tab shell. Screens hold pointers, so the value receivers
// below only copy the shell state.
type Model struct {
	d       *Deps
	screens []screen
	active  int

	width, height int

	status    string
	statusErr bool
}

// New builds every screen up front from the planner state.
func New(d *Deps) Model {
	return Model{
		d: d,
		screens: []screen{
			tabHome:     newHomeScreen(d),
			tabTasks:    newTasksScreen(d),
			tabGuests:   newGuestsScreen(d),
			tabCosts:    newCostsScreen(d),
			tabContacts: newContactsScreen(d),
			tabDates:    newDatesScreen(d),
			tabAbout:    newAboutScreen(d),
		},
		width:  80,
		height: 24,
	}
}

// Run takes over the terminal until the user quits.
func Run(d *Deps) error {
	p := tea.NewProgram(New(d), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) current() screen { return m.screens[m.active] }

func (m Model) goTo(tab int) (Model, tea.Cmd) {
	m.active = (tab + len(m.screens)) % len(m.screens)
	m.status, m.statusErr = "", false
	return m, m.current().refresh()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		return m, nil
	case navigateMsg:
		return m.goTo(x.tab)
	case statusMsg:
		m.status, m.statusErr = x.text, x.err
		return m, nil
	case exportedMsg:
		st := exportStatus(x)
		if x.err != nil && m.d.Logger != nil {
			m.d.Logger.Printf("export %s: %v", x.what, x.err)
		}
		m.status, m.statusErr = st.text, st.err
		return m, nil
	case tea.KeyMsg:
		if x.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.current().typing() {
			switch {
			case key.Matches(x, keys.quit):
				return m, tea.Quit
			case key.Matches(x, keys.nextTab):
				return m.goTo(m.active + 1)
			case key.Matches(x, keys.prevTab):
				return m.goTo(m.active - 1)
			}
			if n, err := strconv.Atoi(x.String()); err == nil && n >= 1 && n <= len(m.screens) {
				return m.goTo(n - 1)
			}
		}
	}
	return m, m.current().update(msg)
}

func (m Model) tabBar() string {
	t := ui.Current()
	parts := make([]string, len(m.screens))
	for i, s := range m.screens {
		label := strconv.Itoa(i+1) + " " + s.title()
		if i == m.active {
			parts[i] = t.ActiveTab.Render(label)
		} else {
			parts[i] = t.Tab.Render(label)
		}
	}
	return strings.Join(parts, "")
}

func (m Model) statusLine() string {
	t := ui.Current()
	switch {
	case m.status == "":
		return ""
	case m.statusErr:
		return t.Error.Render("✖ " + m.status)
	default:
		return t.Success.Render("✔ " + m.status)
	}
}

func (m Model) View() string {
	// panel border and padding
	w, h := m.width-4, m.height-2
	body := m.current().view(w, max(h-3, 3))
	return ui.PanelString(m.tabBar() + "\n" + body + "\n" + m.statusLine())
}
