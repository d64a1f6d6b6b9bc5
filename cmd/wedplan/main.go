package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/browser"

	"github.com/Makepad-fr/wedplan/internal/cli"
	"github.com/Makepad-fr/wedplan/internal/config"
	"github.com/Makepad-fr/wedplan/internal/links"
	"github.com/Makepad-fr/wedplan/internal/planner"
	"github.com/Makepad-fr/wedplan/internal/report"
	"github.com/Makepad-fr/wedplan/internal/store/kvstore"
	"github.com/Makepad-fr/wedplan/internal/tui"
	"github.com/Makepad-fr/wedplan/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	cfgPath := flag.String("config", "", "path to config.toml")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	groupPending := flag.Bool("group", false, "group task output by pending/done")
	ephemeral := flag.Bool("ephemeral", false, "keep data in memory only")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		os.Exit(1)
	}
	if *theme != "" {
		cfg.UI.Theme = *theme
	}
	ui.SetTheme(cfg.UI.Theme)

	lg, closeLog := openLogger(cfg.Log.Path)

	st, err := openStore(cfg, *ephemeral, lg)
	if err != nil {
		ui.Fail(os.Stderr, "storage: "+err.Error())
		closeLog()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	// the TUI owns the terminal; keep launcher chatter out of it
	browser.Stdout, browser.Stderr = io.Discard, io.Discard

	var sharer report.Sharer = report.NoSharer{}
	if cfg.Share.Enabled {
		sharer = report.BrowserSharer{}
	}
	deps := &tui.Deps{
		Ctx:      ctx,
		Planner:  planner.Open(ctx, st, lg),
		Exporter: &report.Exporter{Dir: cfg.Export.Dir, Sharer: sharer, Logger: lg},
		Opener:   links.BrowserOpener{},
		Socials:  socials(cfg.Links),
		Studio:   cfg.Studio.Name,
		Tagline:  cfg.Studio.Tagline,
		Logger:   lg,
		Now:      time.Now,
	}

	code := cli.Run(flag.Args(), cli.Options{
		Group: *groupPending,
		Deps:  deps,
	})
	stop()
	if err := st.Close(); err != nil {
		lg.Printf("close store: %v", err)
	}
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	closeLog()
	os.Exit(code)
}

// openLogger writes to path, or discards when it cannot be opened.
func openLogger(path string) (*log.Logger, func()) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err == nil {
			return log.New(f, "wedplan ", log.LstdFlags|log.Lmsgprefix), func() { _ = f.Close() }
		}
	}
	ui.Warn(os.Stderr, "log file unavailable, logging disabled: "+path)
	return log.New(io.Discard, "", 0), func() {}
}

func openStore(cfg config.Config, ephemeral bool, lg *log.Logger) (kvstore.Store, error) {
	if ephemeral {
		lg.Printf("using in-memory store")
		return kvstore.NewMemoryStore(), nil
	}
	secret, err := kvstore.ResolveSecret(cfg.Storage.Secret, cfg.DataDir())
	if err != nil {
		return nil, err
	}
	lg.Printf("opening %s (secret from %s)", cfg.Storage.Path, secret.Source)
	return kvstore.OpenSecure(cfg.Storage.Path, secret.Value)
}

func socials(l config.LinksConfig) []links.Social {
	var out []links.Social
	for _, s := range []links.Social{
		{Label: "Instagram", URL: l.Instagram},
		{Label: "Facebook", URL: l.Facebook},
		{Label: "WhatsApp", URL: l.WhatsApp},
	} {
		if s.URL != "" {
			out = append(out, s)
		}
	}
	return out
}
