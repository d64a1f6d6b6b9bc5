package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SecureStore keeps sealed values in a single-table sqlite database.
type SecureStore struct {
	db *sql.DB
	s  *sealer

	mu     sync.Mutex
	closed bool
}

// OpenSecure creates the database directory, applies migrations and opens
// the store. passphrase must not be empty.
func OpenSecure(path, passphrase string) (*SecureStore, error) {
	s, err := newSealer(passphrase)
	if err != nil {
		return nil, fmt.Errorf("sealer: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := runMigrations(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	return &SecureStore{db: db, s: s}, nil
}

func (st *SecureStore) Get(ctx context.Context, key string) (string, bool, error) {
	if st.isClosed() {
		return "", false, ErrClosed
	}
	var sealed string
	err := st.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	v, err := st.s.open(sealed)
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return v, true, nil
}

func (st *SecureStore) Set(ctx context.Context, key, value string) error {
	if st.isClosed() {
		return ErrClosed
	}
	sealed, err := st.s.seal(value)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	_, err = st.db.ExecContext(ctx, `
INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, sealed, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (st *SecureStore) Close() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return nil
	}
	st.closed = true
	return st.db.Close()
}

func (st *SecureStore) isClosed() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.closed
}
