package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/wedplan/internal/ui"
)

type tasksScreen struct{ base }

func newTasksScreen(d *Deps) *tasksScreen {
	s := &tasksScreen{base: newBase(d, keys.add, keys.toggle, keys.edit, keys.del)}
	s.reload = s.refresh
	s.refresh()
	return s
}

func (s *tasksScreen) title() string { return "Tarefas" }

func (s *tasksScreen) refresh() tea.Cmd {
	t := ui.Current()
	tasks := s.d.Planner.Tasks
	items := tasks.Items()
	rows := make([]row, 0, len(items))
	for _, it := range items {
		r := row{id: it.ID, text: it.Display(), left: t.Muted.Render(t.BoxUnchecked) + " "}
		if it.Done {
			r.left = t.Success.Render(t.BoxChecked) + " "
			r.style = t.Done
		}
		rows = append(rows, r)
	}

	// Header title with live counts
	dn, pn := tasks.Stats()
	s.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Lista de Tarefas"),
		t.Success.Render(t.SymDone), dn,
		t.Pending.Render(t.SymPending), pn,
		t.Accent.Render("Total"), len(items),
	)
	return s.setRows(rows)
}

func (s *tasksScreen) update(msg tea.Msg) tea.Cmd {
	if s.form != nil {
		return s.updateForm(msg)
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok || s.list.SettingFilter() {
		return s.updateList(msg)
	}
	ctx, tasks := s.d.Ctx, s.d.Planner.Tasks
	i := tasks.IndexOf(s.selected())

	switch {
	case key.Matches(k, keys.add):
		return s.openForm(newForm("Nova tarefa", field{placeholder: "Digite uma nova tarefa"}),
			func(v []string) (string, error) { return "Tarefa adicionada", tasks.Add(ctx, v[0]) })
	case key.Matches(k, keys.toggle):
		return s.apply(tasks.Toggle(ctx, i), "")
	case key.Matches(k, keys.edit):
		it, err := tasks.At(i)
		if err != nil {
			return nil
		}
		return s.openForm(newForm("Editar tarefa", field{placeholder: "Texto da tarefa", value: it.Text}),
			func(v []string) (string, error) { return "Tarefa atualizada", tasks.Edit(ctx, i, v[0]) })
	case key.Matches(k, keys.del):
		return s.apply(tasks.Delete(ctx, i), "Tarefa removida")
	}
	return s.updateList(msg)
}

func (s *tasksScreen) view(width, height int) string {
	done, _ := s.d.Planner.Tasks.Stats()
	bar := ui.Current().Muted.Render(ui.ProgressBar(done, s.d.Planner.Tasks.Len(), 28))
	return s.render(width, height, bar)
}
