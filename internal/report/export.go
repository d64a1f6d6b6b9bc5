package report

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
)

var (
	// ErrNothingToExport is returned for an empty collection; no file is written.
	ErrNothingToExport = errors.New("nothing to export")
	// ErrShareUnavailable means the file was written but could not be shared.
	ErrShareUnavailable = errors.New("sharing unavailable")
)

// Sharer hands a written file to another application.
type Sharer interface {
	Share(ctx context.Context, path string) error
}

// BrowserSharer opens the file with the desktop's default handler.
type BrowserSharer struct{}

func (BrowserSharer) Share(_ context.Context, path string) error {
	return browser.OpenFile(path)
}

// NoSharer is used when sharing is switched off in the config.
type NoSharer struct{}

func (NoSharer) Share(context.Context, string) error { return ErrShareUnavailable }

// Exporter writes reports into Dir and shares them.
type Exporter struct {
	Dir    string
	Sharer Sharer
	Logger *log.Logger
}

// Export writes content to Dir/name and shares it. count is the number of
// records in the report; zero aborts before any file is touched. The
// returned path is set whenever the file was written.
func (e *Exporter) Export(ctx context.Context, name string, count int, content string) (string, error) {
	if count == 0 {
		return "", ErrNothingToExport
	}
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir export dir: %w", err)
	}
	p := filepath.Join(e.Dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		e.logf("export %s: %v", name, err)
		return "", fmt.Errorf("write file: %w", err)
	}
	e.logf("export written: %s", p)

	if e.Sharer == nil {
		return p, ErrShareUnavailable
	}
	if err := e.Sharer.Share(ctx, p); err != nil {
		e.logf("share %s: %v", p, err)
		if errors.Is(err, ErrShareUnavailable) {
			return p, err
		}
		return p, fmt.Errorf("%w: %w", ErrShareUnavailable, err)
	}
	return p, nil
}

func (e *Exporter) logf(format string, args ...any) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}
