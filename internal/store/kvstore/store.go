// Package kvstore is the device-local key/value store every planner list is
// persisted into. Values are opaque strings addressed by a fixed key.
package kvstore

import (
	"context"
	"errors"
)

// Storage keys, one per entity collection.
const (
	KeyTasks    = "tasks"
	KeyGuests   = "guests"
	KeyCosts    = "professionals"
	KeyContacts = "contacts"
	KeyEvents   = "events"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("kvstore: closed")

// Store is a string key/value store.
type Store interface {
	// Get returns ok=false when the key has never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
