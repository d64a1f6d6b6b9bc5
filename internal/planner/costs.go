package planner

import (
	"context"
	"log"

	"github.com/Makepad-fr/wedplan/internal/model"
	"github.com/Makepad-fr/wedplan/internal/store/kvstore"
)

// Costs tracks what each professional charges and what was paid.
type Costs struct {
	list[model.Cost]
}

func NewCosts(ctx context.Context, st kvstore.Store, lg *log.Logger) *Costs {
	c := &Costs{newList(kvstore.KeyCosts, st, lg, func(v *model.Cost) *string { return &v.ID })}
	c.load(ctx)
	return c
}

// Add requires all three fields. Amounts that do not parse are kept as NaN.
func (c *Costs) Add(ctx context.Context, name, total, paid string) error {
	f, err := required(name, total, paid)
	if err != nil {
		return err
	}
	return c.append(ctx, model.Cost{
		Name:  f[0],
		Total: model.ParseAmount(f[1]),
		Paid:  model.ParseAmount(f[2]),
	})
}

// SetPaid replaces the paid amount of entry i.
func (c *Costs) SetPaid(ctx context.Context, i int, paid string) error {
	if err := c.check(i); err != nil {
		return err
	}
	f, err := required(paid)
	if err != nil {
		return err
	}
	c.items[i].Paid = model.ParseAmount(f[0])
	return c.persist(ctx)
}

// Totals sums every entry's total and paid amounts.
func (c *Costs) Totals() (total, paid model.Amount) {
	for _, it := range c.items {
		total = total.Add(it.Total)
		paid = paid.Add(it.Paid)
	}
	return total, paid
}
