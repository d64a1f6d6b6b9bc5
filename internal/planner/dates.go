package planner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Makepad-fr/wedplan/internal/model"
	"github.com/Makepad-fr/wedplan/internal/store/kvstore"
)

// ErrDate means the date is not a valid YYYY-MM-DD day.
var ErrDate = errors.New("invalid date")

// Dates is the appointment calendar.
type Dates struct {
	list[model.Appointment]
}

func NewDates(ctx context.Context, st kvstore.Store, lg *log.Logger) *Dates {
	d := &Dates{newList(kvstore.KeyEvents, st, lg, func(v *model.Appointment) *string { return &v.ID })}
	d.load(ctx)
	return d
}

// Add needs a name and a selected day.
func (d *Dates) Add(ctx context.Context, name, date string) error {
	f, err := required(name, date)
	if err != nil {
		return err
	}
	if _, err := time.ParseInLocation(model.DateLayout, f[1], time.Local); err != nil {
		return fmt.Errorf("%w: %q", ErrDate, f[1])
	}
	return d.append(ctx, model.Appointment{Name: f[0], Date: f[1]})
}

// Marked maps each appointment day to whether it is past at now. Computed
// per call; callers pass the current time on every render.
func (d *Dates) Marked(now time.Time) map[string]bool {
	out := make(map[string]bool, len(d.items))
	for _, it := range d.items {
		out[it.Date] = it.IsPast(now)
	}
	return out
}
