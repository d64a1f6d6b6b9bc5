package planner

import (
	"context"
	"log"

	"github.com/Makepad-fr/wedplan/internal/model"
	"github.com/Makepad-fr/wedplan/internal/store/kvstore"
)

// Guests is the guest list with a headcount per entry.
type Guests struct {
	list[model.Guest]
}

func NewGuests(ctx context.Context, st kvstore.Store, lg *log.Logger) *Guests {
	g := &Guests{newList(kvstore.KeyGuests, st, lg, func(v *model.Guest) *string { return &v.ID })}
	g.load(ctx)
	return g
}

// Add appends a guest covering one person. Duplicate names are fine.
func (g *Guests) Add(ctx context.Context, name string) error {
	f, err := required(name)
	if err != nil {
		return err
	}
	return g.append(ctx, model.Guest{Name: f[0], Count: model.MinGuestCount})
}

// AddCount appends a guest covering count people, clamped to the floor.
func (g *Guests) AddCount(ctx context.Context, name string, count int) error {
	f, err := required(name)
	if err != nil {
		return err
	}
	return g.append(ctx, model.Guest{Name: f[0], Count: max(count, model.MinGuestCount)})
}

func (g *Guests) Increment(ctx context.Context, i int) error {
	if err := g.check(i); err != nil {
		return err
	}
	g.items[i].Count++
	return g.persist(ctx)
}

// Decrement lowers the count of guest i. At the floor it does nothing and
// reports changed=false.
func (g *Guests) Decrement(ctx context.Context, i int) (changed bool, err error) {
	if err := g.check(i); err != nil {
		return false, err
	}
	if g.items[i].Count <= model.MinGuestCount {
		return false, nil
	}
	g.items[i].Count--
	return true, g.persist(ctx)
}

// Total is the sum of all counts.
func (g *Guests) Total() int {
	n := 0
	for _, it := range g.items {
		n += it.Count
	}
	return n
}

// Similar lists existing names close to name. Advisory only.
func (g *Guests) Similar(name string) []string {
	names := make([]string, len(g.items))
	for i, it := range g.items {
		names[i] = it.Name
	}
	return similarNames(names, name)
}
