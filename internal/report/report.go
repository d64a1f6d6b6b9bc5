// Package report turns planner lists into plain-text reports and hands the
// written file to a share target.
package report

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/wedplan/internal/model"
)

// File names used in the export directory.
const (
	GuestFile = "lista_convidados.txt"
	CostFile  = "lista_profissionais.txt"
)

// GuestReport lists every guest with its count and the grand total.
func GuestReport(guests []model.Guest) string {
	lines := make([]string, len(guests))
	total := 0
	for i, g := range guests {
		lines[i] = fmt.Sprintf("%d. %s - %d", i+1, g.Name, g.Count)
		total += g.Count
	}
	return fmt.Sprintf("%s\n\nTotal de convidados: %d", strings.Join(lines, "\n"), total)
}

// CostReport lists each professional's total and paid amounts, then the sums.
func CostReport(costs []model.Cost) string {
	var b strings.Builder
	b.WriteString("Lista de Profissionais\n\n")
	var total, paid model.Amount
	for _, c := range costs {
		fmt.Fprintf(&b, "Nome: %s\nTotal: R$ %s\nPago: R$ %s\n\n", c.Name, c.Total.Fixed(), c.Paid.Fixed())
		total = total.Add(c.Total)
		paid = paid.Add(c.Paid)
	}
	fmt.Fprintf(&b, "Total Geral: R$ %s\nTotal Pago: R$ %s\n", total.Fixed(), paid.Fixed())
	return b.String()
}
