package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/wedplan/internal/model"
	"github.com/Makepad-fr/wedplan/internal/report"
	"github.com/Makepad-fr/wedplan/internal/ui"
)

type costsScreen struct{ base }

func newCostsScreen(d *Deps) *costsScreen {
	s := &costsScreen{base: newBase(d, keys.add, keys.paid, keys.del, keys.export)}
	s.reload = s.refresh
	s.refresh()
	return s
}

func (s *costsScreen) title() string { return "Custos" }

func settled(c model.Cost) bool {
	if c.Total.IsNaN() || c.Paid.IsNaN() {
		return false
	}
	return c.Paid.Decimal().GreaterThanOrEqual(c.Total.Decimal())
}

func (s *costsScreen) refresh() tea.Cmd {
	t := ui.Current()
	items := s.d.Planner.Costs.Items()
	rows := make([]row, 0, len(items))
	for _, it := range items {
		paid := t.Pending.Render("Pago: R$ " + it.Paid.Fixed())
		if settled(it) {
			paid = t.Success.Render("Pago: R$ " + it.Paid.Fixed())
		}
		rows = append(rows, row{
			id:    it.ID,
			text:  it.Name,
			right: "  " + t.Muted.Render("Total: R$ "+it.Total.Fixed()) + "  " + paid,
		})
	}
	s.list.Title = t.Title.Render("Custos dos Profissionais")
	return s.setRows(rows)
}

func (s *costsScreen) update(msg tea.Msg) tea.Cmd {
	if s.form != nil {
		return s.updateForm(msg)
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok || s.list.SettingFilter() {
		return s.updateList(msg)
	}
	ctx, costs := s.d.Ctx, s.d.Planner.Costs
	i := costs.IndexOf(s.selected())

	switch {
	case key.Matches(k, keys.add):
		f := newForm("Novo profissional",
			field{placeholder: "Nome do profissional"},
			field{placeholder: "Valor Total", limit: 20},
			field{placeholder: "Valor Pago", limit: 20},
		)
		return s.openForm(f, func(v []string) (string, error) {
			return "Profissional adicionado", costs.Add(ctx, v[0], v[1], v[2])
		})
	case key.Matches(k, keys.paid):
		it, err := costs.At(i)
		if err != nil {
			return nil
		}
		f := newForm("Novo valor pago para "+it.Name, field{placeholder: "Novo valor pago (atual R$ " + it.Paid.Fixed() + ")", limit: 20})
		return s.openForm(f, func(v []string) (string, error) {
			return "Valor pago atualizado", costs.SetPaid(ctx, i, v[0])
		})
	case key.Matches(k, keys.del):
		return s.apply(costs.Delete(ctx, i), "Profissional removido")
	case key.Matches(k, keys.export):
		items := costs.Items()
		return exportCmd(s.d, "profissionais", report.CostFile, len(items), report.CostReport(items))
	}
	return s.updateList(msg)
}

func (s *costsScreen) view(width, height int) string {
	t := ui.Current()
	total, paid := s.d.Planner.Costs.Totals()
	footer := t.Title.Render(fmt.Sprintf("Total Geral: R$ %s   Total Pago: R$ %s", total.Fixed(), paid.Fixed()))
	if !total.IsNaN() && !paid.IsNaN() && total.Decimal().IsPositive() {
		footer += "\n" + t.Muted.Render(ui.ProgressBar(int(paid.Decimal().IntPart()), int(total.Decimal().IntPart()), 28))
	}
	return s.render(width, height, footer)
}
