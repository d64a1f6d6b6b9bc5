package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecureStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "wedplan.db")

	st, err := OpenSecure(path, "hunter2")
	require.NoError(t, err)

	_, ok, err := st.Get(ctx, KeyGuests)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, st.Set(ctx, KeyGuests, `[{"name":"Ana","count":1}]`))
	require.NoError(t, st.Set(ctx, KeyGuests, `[{"name":"Ana","count":2}]`))
	require.NoError(t, st.Close())

	st, err = OpenSecure(path, "hunter2")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	v, ok, err := st.Get(ctx, KeyGuests)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"name":"Ana","count":2}]`, v)
}

func TestSecureStoreSealsValuesOnDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wedplan.db")
	st, err := OpenSecure(path, "pw")
	require.NoError(t, err)
	require.NoError(t, st.Set(ctx, KeyContacts, "Buffet Costa"))
	require.NoError(t, st.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	var raw string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, KeyContacts).Scan(&raw))
	require.NotContains(t, raw, "Buffet")
}

func TestSecureStoreWrongPassphrase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wedplan.db")
	st, err := OpenSecure(path, "right")
	require.NoError(t, err)
	require.NoError(t, st.Set(ctx, KeyTasks, "[]"))
	require.NoError(t, st.Close())

	st, err = OpenSecure(path, "wrong")
	require.NoError(t, err)
	defer st.Close()
	_, _, err = st.Get(ctx, KeyTasks)
	require.Error(t, err)
}

func TestSecureStoreClosed(t *testing.T) {
	st, err := OpenSecure(filepath.Join(t.TempDir(), "x.db"), "pw")
	require.NoError(t, err)
	require.NoError(t, st.Close())
	require.ErrorIs(t, st.Set(context.Background(), KeyTasks, "[]"), ErrClosed)
}

func TestMemoryStoreFailures(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	require.NoError(t, m.Set(ctx, "k", "v"))
	boom := errors.New("boom")
	m.FailSet = boom
	require.ErrorIs(t, m.Set(ctx, "k", "w"), boom)
	v, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", v)
}

func TestResolveSecret(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(SecretEnv, "")

	s, err := ResolveSecret("  explicit ", dir)
	require.NoError(t, err)
	require.Equal(t, Secret{Value: "explicit", Source: "config"}, s)

	first, err := ResolveSecret("", dir)
	require.NoError(t, err)
	require.Equal(t, "file", first.Source)
	require.Len(t, first.Value, 64)

	fi, err := os.Stat(filepath.Join(dir, secretFileName))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

	again, err := ResolveSecret("", dir)
	require.NoError(t, err)
	require.Equal(t, first.Value, again.Value)

	t.Setenv(SecretEnv, "from-env")
	s, err = ResolveSecret("", dir)
	require.NoError(t, err)
	require.Equal(t, "env", s.Source)
	require.True(t, strings.EqualFold(s.Value, "from-env"))
}
