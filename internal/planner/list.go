// Package planner holds the in-memory state of each planner screen. Every
// mutating call writes the whole collection back to the store before it
// returns; the in-memory change is kept even when that write fails.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Makepad-fr/wedplan/internal/store/jsonstore"
	"github.com/Makepad-fr/wedplan/internal/store/kvstore"
)

var (
	// ErrBlank means a required field was empty after trimming. Nothing changed.
	ErrBlank = errors.New("required field is blank")
	// ErrIndex means the position does not exist. Nothing changed.
	ErrIndex = errors.New("index out of range")
	// ErrNotPersisted means the change was applied in memory but the
	// write-back failed.
	ErrNotPersisted = errors.New("change not saved")
)

// list is the load / mutate / write-back core shared by every screen.
type list[T any] struct {
	key   string
	st    kvstore.Store
	lg    *log.Logger
	id    func(*T) *string
	items []T
}

func newList[T any](key string, st kvstore.Store, lg *log.Logger, id func(*T) *string) list[T] {
	return list[T]{key: key, st: st, lg: lg, id: id, items: []T{}}
}

// load replaces the in-memory items with the stored ones. Records written
// before ids existed get one here; it is persisted with the next write.
func (l *list[T]) load(ctx context.Context) {
	l.items = jsonstore.Load[T](ctx, l.st, l.key, l.lg)
	for i := range l.items {
		if p := l.id(&l.items[i]); *p == "" {
			*p = uuid.NewString()
		}
	}
}

func (l *list[T]) persist(ctx context.Context) error {
	if err := jsonstore.Save(ctx, l.st, l.key, l.items, l.lg); err != nil {
		return fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}
	return nil
}

func (l *list[T]) append(ctx context.Context, v T) error {
	*l.id(&v) = uuid.NewString()
	l.items = append(l.items, v)
	return l.persist(ctx)
}

func (l *list[T]) check(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("%w: have %d, got %d", ErrIndex, len(l.items), i+1)
	}
	return nil
}

// Delete removes the record at position i.
func (l *list[T]) Delete(ctx context.Context, i int) error {
	if err := l.check(i); err != nil {
		return err
	}
	l.items = append(l.items[:i:i], l.items[i+1:]...)
	return l.persist(ctx)
}

// Len is the number of records.
func (l *list[T]) Len() int { return len(l.items) }

// Items returns a copy of the records in order.
func (l *list[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// At returns the record at position i.
func (l *list[T]) At(i int) (T, error) {
	var zero T
	if err := l.check(i); err != nil {
		return zero, err
	}
	return l.items[i], nil
}

// IndexOf finds a record by id; -1 when absent.
func (l *list[T]) IndexOf(id string) int {
	for i := range l.items {
		if *l.id(&l.items[i]) == id {
			return i
		}
	}
	return -1
}

// Reload re-reads the collection from the store.
func (l *list[T]) Reload(ctx context.Context) { l.load(ctx) }

func required(fields ...string) ([]string, error) {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
		if out[i] == "" {
			return nil, ErrBlank
		}
	}
	return out, nil
}
