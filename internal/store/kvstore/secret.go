package kvstore

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SecretEnv overrides the stored passphrase.
const SecretEnv = "WEDPLAN_SECRET"

const secretFileName = "secret"

// Secret is a resolved passphrase and where it came from.
type Secret struct {
	Value  string
	Source string // "config" | "env" | "file"
}

// ResolveSecret picks the store passphrase: an explicit configured value,
// then WEDPLAN_SECRET, then a per-user secret file in dir. The file is
// created with random content (0600) the first time.
func ResolveSecret(configured, dir string) (Secret, error) {
	if v := strings.TrimSpace(configured); v != "" {
		return Secret{Value: v, Source: "config"}, nil
	}
	if v := strings.TrimSpace(os.Getenv(SecretEnv)); v != "" {
		return Secret{Value: v, Source: "env"}, nil
	}

	p := filepath.Join(dir, secretFileName)
	b, err := os.ReadFile(p)
	if err == nil {
		v := strings.TrimSpace(string(b))
		if v == "" {
			return Secret{}, fmt.Errorf("secret file %s is empty", p)
		}
		return Secret{Value: v, Source: "file"}, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return Secret{}, fmt.Errorf("read secret: %w", err)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return Secret{}, fmt.Errorf("mkdir: %w", err)
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return Secret{}, fmt.Errorf("generate secret: %w", err)
	}
	v := hex.EncodeToString(buf)
	// owner-only
	if err := os.WriteFile(p, []byte(v+"\n"), 0o600); err != nil {
		return Secret{}, fmt.Errorf("write secret: %w", err)
	}
	return Secret{Value: v, Source: "file"}, nil
}
