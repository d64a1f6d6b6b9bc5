package cli

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/wedplan/internal/links"
	"github.com/Makepad-fr/wedplan/internal/planner"
	"github.com/Makepad-fr/wedplan/internal/report"
	"github.com/Makepad-fr/wedplan/internal/store/kvstore"
	"github.com/Makepad-fr/wedplan/internal/tui"
	"github.com/Makepad-fr/wedplan/internal/ui"
)

type env struct {
	opt      Options
	out, err *bytes.Buffer
	dir      string
	opened   []string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	lg := log.New(io.Discard, "", 0)
	e := &env{out: &bytes.Buffer{}, err: &bytes.Buffer{}, dir: t.TempDir()}
	e.opt = Options{
		Out: e.out,
		Err: e.err,
		Deps: &tui.Deps{
			Ctx:      ctx,
			Planner:  planner.Open(ctx, kvstore.NewMemoryStore(), lg),
			Exporter: &report.Exporter{Dir: e.dir, Sharer: report.NoSharer{}, Logger: lg},
			Opener: links.OpenerFunc(func(u string) error {
				e.opened = append(e.opened, u)
				return nil
			}),
			Logger: lg,
			Now:    func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.Local) },
		},
	}
	return e
}

func (e *env) run(args ...string) int {
	e.out.Reset()
	e.err.Reset()
	return Run(args, e.opt)
}

func TestTasksCommands(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 0, e.run("tasks", "add", "Reservar", "o", "buffet"))
	require.Equal(t, 0, e.run("tasks", "done", "1"))

	tasks := e.opt.Deps.Planner.Tasks.Items()
	require.Len(t, tasks, 1)
	require.Equal(t, "Reservar o buffet", tasks[0].Text)
	require.True(t, tasks[0].Done)

	require.Equal(t, 0, e.run("tasks", "ls"))
	require.Contains(t, e.out.String(), "✓ Reservar o buffet")
}

func TestIndexErrorsAreUsage(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 2, e.run("tasks", "rm", "3"))
	require.Contains(t, e.err.String(), "wedplan tasks ls")

	require.Equal(t, 2, e.run("guests", "inc", "x"))
	require.Equal(t, 2, e.run("tasks", "add"))
	require.Equal(t, 2, e.run("tasks", "frobnicate"))
	require.Equal(t, 2, e.run("nope"))
}

func TestGuestsCountAndExport(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 1, e.run("guests", "export"))
	_, err := os.Stat(filepath.Join(e.dir, report.GuestFile))
	require.True(t, os.IsNotExist(err))

	require.Equal(t, 0, e.run("guests", "add", "Ana"))
	require.Equal(t, 0, e.run("guests", "inc", "1"))
	require.Equal(t, 0, e.run("guests", "dec", "1"))
	require.Equal(t, 0, e.run("guests", "dec", "1"))
	require.Contains(t, e.out.String(), "count already at 1")

	// share is disabled: file is written and the command still succeeds
	require.Equal(t, 0, e.run("guests", "export"))
	b, err := os.ReadFile(filepath.Join(e.dir, report.GuestFile))
	require.NoError(t, err)
	require.Equal(t, "1. Ana - 1\n\nTotal de convidados: 1", string(b))
}

func TestCostsAndContacts(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 0, e.run("costs", "add", "Buffet", "1000", "250"))
	require.Equal(t, 0, e.run("costs", "paid", "1", "1000,5"))
	_, paid := e.opt.Deps.Planner.Costs.Totals()
	require.Equal(t, "1000.50", paid.Fixed())
	require.Equal(t, 2, e.run("costs", "add", "Buffet", "1000"))

	require.Equal(t, 0, e.run("contacts", "add", "Fotógrafo", "11999999999"))
	require.Equal(t, 0, e.run("contacts", "open", "1"))
	require.Equal(t, []string{"whatsapp://send?phone=%2B5511999999999"}, e.opened)
}

func TestDatesAddValidates(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 2, e.run("dates", "add", "20/11/2026", "Degustação"))
	require.Equal(t, 0, e.run("dates", "add", "2026-11-20", "Degustação"))
	require.Equal(t, 0, e.run("dates", "ls"))
	require.Contains(t, e.out.String(), "2026-11-20  Degustação")
}

func TestImport(t *testing.T) {
	e := newEnv(t)
	p := filepath.Join(t.TempDir(), "plan.toml")
	require.NoError(t, os.WriteFile(p, []byte(`
[[task]]
text = "Enviar convites"

[[guest]]
name = "Família Souza"
count = 4

[[guest]]
name = ""
`), 0o644))

	require.Equal(t, 1, e.run("import", p))
	require.Contains(t, e.out.String(), "imported 2 records")
	require.Equal(t, 4, e.opt.Deps.Planner.Guests.Total())
	require.Equal(t, 1, e.run("import", filepath.Join(t.TempDir(), "missing.toml")))
}

func TestHelp(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 0, e.run("help"))
	require.Contains(t, e.out.String(), "wedplan import <plan.toml>")
}

func TestDatesLsUsesWallClockByDefault(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	e := newEnv(t)
	e.opt.Deps.Now = nil
	require.Equal(t, 0, e.run("dates", "add", "2000-01-01", "Noivado"))
	require.Equal(t, 0, e.run("dates", "add", "2999-01-01", "Bodas"))

	require.Equal(t, 0, e.run("dates", "ls"))
	require.Contains(t, e.out.String(), "x 2000-01-01  Noivado")
	require.Contains(t, e.out.String(), "* 2999-01-01  Bodas")
}

func TestGroupedTasksKeepListIndexes(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	e := newEnv(t)
	for _, text := range []string{"A", "B", "C"} {
		require.Equal(t, 0, e.run("tasks", "add", text))
	}
	require.Equal(t, 0, e.run("tasks", "done", "1"))

	e.opt.Group = true
	require.Equal(t, 0, e.run("tasks", "ls"))
	out := e.out.String()
	require.Contains(t, out, " 1. [x] ✓ A")
	require.Contains(t, out, " 2. [ ] B")
	require.Contains(t, out, " 3. [ ] C")
	require.NotContains(t, out, " 1. [ ] B")

	// the printed index addresses the same record
	require.Equal(t, 0, e.run("tasks", "rm", "2"))
	tasks := e.opt.Deps.Planner.Tasks.Items()
	require.Equal(t, "A", tasks[0].Text)
	require.Equal(t, "C", tasks[1].Text)
}
