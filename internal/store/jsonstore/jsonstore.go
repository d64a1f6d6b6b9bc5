package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Makepad-fr/wedplan/internal/store/kvstore"
)

// JSON-backed lists. One key holds one whole collection; every save rewrites
// it. No locking: each key has exactly one writer and writes are sequential.

// Load reads the collection under key. It never fails: a missing key, a
// store error or undecodable JSON all give an empty slice, logged to lg.
func Load[T any](ctx context.Context, st kvstore.Store, key string, lg *log.Logger) []T {
	raw, ok, err := st.Get(ctx, key)
	if err != nil {
		logf(lg, "load %s: %v", key, err)
		return []T{}
	}
	if !ok || raw == "" {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logf(lg, "load %s: json unmarshal: %v", key, err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Save overwrites key with the full collection. The error is logged and
// returned so the caller can surface it.
func Save[T any](ctx context.Context, st kvstore.Store, key string, items []T, lg *log.Logger) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		logf(lg, "save %s: json marshal: %v", key, err)
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := st.Set(ctx, key, string(b)); err != nil {
		logf(lg, "save %s: %v", key, err)
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func logf(lg *log.Logger, format string, args ...any) {
	if lg != nil {
		lg.Printf(format, args...)
	}
}
