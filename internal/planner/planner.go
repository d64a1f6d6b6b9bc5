package planner

import (
	"context"
	"log"

	"github.com/Makepad-fr/wedplan/internal/store/kvstore"
)

// Planner bundles the five screen controllers over one store.
type Planner struct {
	Tasks    *Tasks
	Guests   *Guests
	Costs    *Costs
	Contacts *Contacts
	Dates    *Dates
}

// Open builds every controller and loads its collection.
func Open(ctx context.Context, st kvstore.Store, lg *log.Logger) *Planner {
	return &Planner{
		Tasks:    NewTasks(ctx, st, lg),
		Guests:   NewGuests(ctx, st, lg),
		Costs:    NewCosts(ctx, st, lg),
		Contacts: NewContacts(ctx, st, lg),
		Dates:    NewDates(ctx, st, lg),
	}
}
