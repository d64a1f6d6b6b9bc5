package cli

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/wedplan/internal/links"
	"github.com/Makepad-fr/wedplan/internal/model"
	"github.com/Makepad-fr/wedplan/internal/report"
	"github.com/Makepad-fr/wedplan/internal/ui"
)

type action struct {
	args  int // minimum positional args
	usage string
	run   func(opt Options, a []string) (string, error)
}

// at parses a[0] as a 1-based index and calls fn with the 0-based one.
func at(fn func(opt Options, i int, rest []string) (string, error)) func(Options, []string) (string, error) {
	return func(opt Options, a []string) (string, error) {
		i, err := index(a[0])
		if err != nil {
			return "", err
		}
		return fn(opt, i, a[1:])
	}
}

var verbs = map[string]map[string]action{
	"tasks": {
		"add": {1, "<text...>", func(opt Options, a []string) (string, error) {
			return "added", opt.Deps.Planner.Tasks.Add(opt.Deps.Ctx, strings.Join(a, " "))
		}},
		"done": {1, "<index>", at(func(opt Options, i int, _ []string) (string, error) {
			return "toggled", opt.Deps.Planner.Tasks.Toggle(opt.Deps.Ctx, i)
		})},
		"edit": {2, "<index> <text...>", at(func(opt Options, i int, rest []string) (string, error) {
			return "updated", opt.Deps.Planner.Tasks.Edit(opt.Deps.Ctx, i, strings.Join(rest, " "))
		})},
		"rm": {1, "<index>", at(func(opt Options, i int, _ []string) (string, error) {
			return "removed", opt.Deps.Planner.Tasks.Delete(opt.Deps.Ctx, i)
		})},
	},
	"guests": {
		"add": {1, "<name...>", func(opt Options, a []string) (string, error) {
			g := opt.Deps.Planner.Guests
			name := strings.Join(a, " ")
			msg := "added"
			if similar := g.Similar(name); len(similar) > 0 {
				msg += " (similar names already listed: " + strings.Join(similar, ", ") + ")"
			}
			return msg, g.Add(opt.Deps.Ctx, name)
		}},
		"inc": {1, "<index>", at(func(opt Options, i int, _ []string) (string, error) {
			return "count increased", opt.Deps.Planner.Guests.Increment(opt.Deps.Ctx, i)
		})},
		"dec": {1, "<index>", at(func(opt Options, i int, _ []string) (string, error) {
			changed, err := opt.Deps.Planner.Guests.Decrement(opt.Deps.Ctx, i)
			if !changed {
				return fmt.Sprintf("count already at %d", model.MinGuestCount), err
			}
			return "count decreased", err
		})},
		"rm": {1, "<index>", at(func(opt Options, i int, _ []string) (string, error) {
			return "removed", opt.Deps.Planner.Guests.Delete(opt.Deps.Ctx, i)
		})},
		"export": {0, "", func(opt Options, _ []string) (string, error) {
			items := opt.Deps.Planner.Guests.Items()
			return export(opt, report.GuestFile, len(items), report.GuestReport(items))
		}},
	},
	"costs": {
		"add": {3, "<name> <total> <paid>", func(opt Options, a []string) (string, error) {
			return "added", opt.Deps.Planner.Costs.Add(opt.Deps.Ctx, a[0], a[1], a[2])
		}},
		"paid": {2, "<index> <amount>", at(func(opt Options, i int, rest []string) (string, error) {
			return "paid amount updated", opt.Deps.Planner.Costs.SetPaid(opt.Deps.Ctx, i, rest[0])
		})},
		"rm": {1, "<index>", at(func(opt Options, i int, _ []string) (string, error) {
			return "removed", opt.Deps.Planner.Costs.Delete(opt.Deps.Ctx, i)
		})},
		"export": {0, "", func(opt Options, _ []string) (string, error) {
			items := opt.Deps.Planner.Costs.Items()
			return export(opt, report.CostFile, len(items), report.CostReport(items))
		}},
	},
	"contacts": {
		"add": {1, "<name> [phone]", func(opt Options, a []string) (string, error) {
			phone := ""
			if len(a) > 1 {
				phone = a[1]
			}
			return "added", opt.Deps.Planner.Contacts.Add(opt.Deps.Ctx, a[0], phone)
		}},
		"open": {1, "<index>", at(func(opt Options, i int, _ []string) (string, error) {
			u, err := opt.Deps.Planner.Contacts.WhatsAppURL(i)
			if err != nil {
				return "", err
			}
			return "opening " + u, links.Open(opt.Deps.Opener, "o WhatsApp", u)
		})},
		"rm": {1, "<index>", at(func(opt Options, i int, _ []string) (string, error) {
			return "removed", opt.Deps.Planner.Contacts.Delete(opt.Deps.Ctx, i)
		})},
	},
	"dates": {
		"add": {2, "<YYYY-MM-DD> <name...>", func(opt Options, a []string) (string, error) {
			return "added", opt.Deps.Planner.Dates.Add(opt.Deps.Ctx, strings.Join(a[1:], " "), a[0])
		}},
		"rm": {1, "<index>", at(func(opt Options, i int, _ []string) (string, error) {
			return "removed", opt.Deps.Planner.Dates.Delete(opt.Deps.Ctx, i)
		})},
	},
}

func export(opt Options, file string, count int, content string) (string, error) {
	p, err := opt.Deps.Exporter.Export(opt.Deps.Ctx, file, count, content)
	if err != nil && p != "" {
		return "share unavailable, file saved to " + p, err
	}
	return "exported to " + p, err
}

// -------------- rendering helpers --------------

func listLines(noun string, opt Options) []string {
	t := ui.Current()
	p := opt.Deps.Planner
	var header string
	var body, footer []string

	switch noun {
	case "tasks":
		items := p.Tasks.Items()
		d, pn := p.Tasks.Stats()
		header = fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			t.Title.Render("Tarefas"),
			t.Success.Render(t.SymDone), d,
			t.Pending.Render(t.SymPending), pn,
			t.Accent.Render("Total"), len(items),
		)
		footer = []string{t.Muted.Render(ui.ProgressBar(d, d+pn, 28))}
		if opt.Group {
			body = groupLines(items)
		} else {
			body = taskLines(indexed(items))
		}
	case "guests":
		header = t.Title.Render("Convidados")
		for i, g := range p.Guests.Items() {
			body = append(body, numbered(i, g.Name+"  "+t.Accent.Render(fmt.Sprint(g.Count))))
		}
		footer = []string{fmt.Sprintf("Total de convidados: %d", p.Guests.Total())}
	case "costs":
		header = t.Title.Render("Custos dos Profissionais")
		for i, c := range p.Costs.Items() {
			body = append(body, numbered(i, fmt.Sprintf("%s  %s  %s", c.Name,
				t.Muted.Render("Total: R$ "+c.Total.Fixed()), t.Accent.Render("Pago: R$ "+c.Paid.Fixed()))))
		}
		total, paid := p.Costs.Totals()
		footer = []string{fmt.Sprintf("Total Geral: R$ %s   Total Pago: R$ %s", total.Fixed(), paid.Fixed())}
	case "contacts":
		header = t.Title.Render("Contatos dos Profissionais")
		for i, c := range p.Contacts.Items() {
			body = append(body, numbered(i, c.Name+"  "+t.Accent.Render(c.Phone)))
		}
	case "dates":
		header = t.Title.Render("Datas Importantes")
		now := opt.Deps.Clock()
		for i, a := range p.Dates.Items() {
			mark := t.Success.Render(t.SymUpcoming)
			if a.IsPast(now) {
				mark = t.Error.Render(t.SymPast)
			}
			body = append(body, numbered(i, mark+" "+a.Date+"  "+a.Name))
		}
	}

	if len(body) == 0 {
		body = []string{t.Muted.Render("nenhum item")}
	}
	lines := append([]string{header, ""}, body...)
	if len(footer) > 0 {
		lines = append(append(lines, ""), footer...)
	}
	return lines
}

func numbered(i int, s string) string {
	return ui.Current().Muted.Render(fmt.Sprintf("%2d.", i+1)) + " " + s
}

// indexedTask keeps a task's 0-based position in the full list, so grouped
// output still prints the index that done/edit/rm expect.
type indexedTask struct {
	pos  int
	task model.Task
}

func indexed(items []model.Task) []indexedTask {
	out := make([]indexedTask, len(items))
	for i, it := range items {
		out[i] = indexedTask{pos: i, task: it}
	}
	return out
}

func taskLines(items []indexedTask) []string {
	if len(items) == 0 {
		return []string{ui.Current().Muted.Render("nenhuma tarefa")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		box := ui.Current().Muted.Render(ui.Current().BoxUnchecked)
		if it.task.Done {
			box = ui.Current().Success.Render(ui.Current().BoxChecked)
		}
		text := it.task.Display()
		if len([]rune(text)) > 80 {
			text = string([]rune(text)[:77]) + "..."
		}
		out = append(out, numbered(it.pos, box+" "+text))
	}
	return out
}

func groupLines(items []model.Task) []string {
	var pend, done []indexedTask
	for _, it := range indexed(items) {
		if it.task.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, ui.Current().Accent.Render("Pendentes"))
	if len(pend) == 0 {
		lines = append(lines, ui.Current().Muted.Render("(nenhuma)"))
	} else {
		lines = append(lines, taskLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.Current().Accent.Render("Concluídas"))
	if len(done) == 0 {
		lines = append(lines, ui.Current().Muted.Render("(nenhuma)"))
	} else {
		lines = append(lines, taskLines(done)...)
	}
	return lines
}
