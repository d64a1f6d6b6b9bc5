package planner

import (
	"context"
	"log"

	"github.com/Makepad-fr/wedplan/internal/model"
	"github.com/Makepad-fr/wedplan/internal/store/kvstore"
)

// Tasks is the to-do list.
type Tasks struct {
	list[model.Task]
}

func NewTasks(ctx context.Context, st kvstore.Store, lg *log.Logger) *Tasks {
	t := &Tasks{newList(kvstore.KeyTasks, st, lg, func(v *model.Task) *string { return &v.ID })}
	t.load(ctx)
	return t
}

func (t *Tasks) Add(ctx context.Context, text string) error {
	f, err := required(text)
	if err != nil {
		return err
	}
	return t.append(ctx, model.Task{Text: f[0]})
}

// Toggle flips the done flag of task i.
func (t *Tasks) Toggle(ctx context.Context, i int) error {
	if err := t.check(i); err != nil {
		return err
	}
	t.items[i].Done = !t.items[i].Done
	return t.persist(ctx)
}

// Edit replaces the text of task i, keeping its done flag.
func (t *Tasks) Edit(ctx context.Context, i int, text string) error {
	if err := t.check(i); err != nil {
		return err
	}
	f, err := required(text)
	if err != nil {
		return err
	}
	t.items[i].Text = f[0]
	return t.persist(ctx)
}

func (t *Tasks) Stats() (done, pending int) {
	for _, it := range t.items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
