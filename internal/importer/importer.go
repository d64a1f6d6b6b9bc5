// Package importer seeds planner lists from a TOML plan file.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/Makepad-fr/wedplan/internal/planner"
)

// Plan is the file layout:
//
//	[[task]]
//	text = "Contratar buffet"
//
//	[[guest]]
//	name = "Família Souza"
//	count = 4
type Plan struct {
	Tasks []struct {
		Text string `toml:"text"`
		Done bool   `toml:"done"`
	} `toml:"task"`
	Guests []struct {
		Name  string `toml:"name"`
		Count int    `toml:"count"`
	} `toml:"guest"`
	Costs []struct {
		Name  string `toml:"name"`
		Total string `toml:"total"`
		Paid  string `toml:"paid"`
	} `toml:"cost"`
	Contacts []struct {
		Name  string `toml:"name"`
		Phone string `toml:"phone"`
	} `toml:"contact"`
	Dates []struct {
		Name string `toml:"name"`
		Date string `toml:"date"`
	} `toml:"date"`
}

// Result counts the records appended per list.
type Result struct {
	Tasks, Guests, Costs, Contacts, Dates int
}

func (r Result) Total() int { return r.Tasks + r.Guests + r.Costs + r.Contacts + r.Dates }

// Decode parses a plan. Unknown keys are rejected.
func Decode(r io.Reader) (Plan, error) {
	var p Plan
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return Plan{}, fmt.Errorf("decode plan: %w", err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return Plan{}, fmt.Errorf("decode plan: unknown key %q", und[0].String())
	}
	return p, nil
}

// Apply appends every entry through the controllers, so the usual
// validation applies. Invalid entries are skipped and reported together.
func Apply(ctx context.Context, p Plan, pl *planner.Planner) (Result, error) {
	var res Result
	var errs []error
	note := func(kind string, i int, err error) bool {
		if err == nil {
			return true
		}
		errs = append(errs, fmt.Errorf("%s %d: %w", kind, i+1, err))
		// the record is in memory even if the write failed
		return errors.Is(err, planner.ErrNotPersisted)
	}

	for i, t := range p.Tasks {
		if note("task", i, pl.Tasks.Add(ctx, t.Text)) {
			res.Tasks++
			if t.Done {
				note("task", i, pl.Tasks.Toggle(ctx, pl.Tasks.Len()-1))
			}
		}
	}
	for i, g := range p.Guests {
		if note("guest", i, pl.Guests.AddCount(ctx, g.Name, g.Count)) {
			res.Guests++
		}
	}
	for i, c := range p.Costs {
		if note("cost", i, pl.Costs.Add(ctx, c.Name, c.Total, c.Paid)) {
			res.Costs++
		}
	}
	for i, c := range p.Contacts {
		if note("contact", i, pl.Contacts.Add(ctx, c.Name, c.Phone)) {
			res.Contacts++
		}
	}
	for i, d := range p.Dates {
		if note("date", i, pl.Dates.Add(ctx, d.Name, d.Date)) {
			res.Dates++
		}
	}
	return res, errors.Join(errs...)
}
