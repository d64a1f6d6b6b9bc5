package tui

import (
	"context"
	"log"
	"time"

	"github.com/Makepad-fr/wedplan/internal/links"
	"github.com/Makepad-fr/wedplan/internal/planner"
	"github.com/Makepad-fr/wedplan/internal/report"
)

// Deps is everything the screens need from the outside.
type Deps struct {
	Ctx      context.Context
	Planner  *planner.Planner
	Exporter *report.Exporter
	Opener   links.Opener
	Socials  []links.Social
	Studio   string
	Tagline  string
	Logger   *log.Logger
	// Now is read on every render of the dates screen.
	Now func() time.Time
}

// Clock is the current moment: Now when set, else the wall clock.
func (d *Deps) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
