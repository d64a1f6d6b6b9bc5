package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Makepad-fr/wedplan/internal/importer"
	"github.com/Makepad-fr/wedplan/internal/planner"
	"github.com/Makepad-fr/wedplan/internal/report"
	"github.com/Makepad-fr/wedplan/internal/tui"
	"github.com/Makepad-fr/wedplan/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // tasks ls grouped by pending/done

	Out, Err io.Writer
	Deps     *tui.Deps
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	if opt.Err == nil {
		opt.Err = os.Stderr
	}
	if len(args) == 0 {
		args = []string{"ui"}
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "ui":
		if err := tui.Run(opt.Deps); err != nil {
			ui.Fail(opt.Err, "ui: "+err.Error())
			return 1
		}
		return 0

	case "import":
		if len(a) != 1 {
			ui.Fail(opt.Err, "usage: wedplan import <plan.toml>")
			return 2
		}
		return doImport(a[0], opt)

	case "tasks", "guests", "costs", "contacts", "dates":
		verb := "ls"
		if len(a) > 0 {
			verb, a = a[0], a[1:]
		}
		return runList(cmd, verb, a, opt)
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `wedplan - wedding planner for the terminal

Usage:
  wedplan [flags] <subcommand> [args]

Subcommands:
  ui                               Open the interactive planner (default)
  tasks    [ls|add|done|edit|rm]   To-do list
  guests   [ls|add|inc|dec|rm|export]
  costs    [ls|add|paid|rm|export] Professional costs
  contacts [ls|add|open|rm]        Professional contacts
  dates    [ls|add|rm]             Important dates
  import <plan.toml>               Append records from a plan file

Examples:
  wedplan tasks add "Reservar o buffet"
  wedplan tasks done 2
  wedplan guests add "Ana Souza"
  wedplan guests inc 1
  wedplan costs add Buffet 12000 3000
  wedplan costs paid 1 4500,50
  wedplan contacts add Fotógrafo 11999999999
  wedplan dates add 2026-11-20 "Prova do vestido"
  wedplan guests export
`)
}

// -------------- subcommand impls ----------------

func runList(noun, verb string, a []string, opt Options) int {
	if verb == "ls" {
		ui.Panel(opt.Out, listLines(noun, opt))
		return 0
	}
	cmd, ok := verbs[noun][verb]
	if !ok {
		ui.Fail(opt.Err, fmt.Sprintf("%s: unknown action %q", noun, verb))
		return 2
	}
	if len(a) < cmd.args || (cmd.args == 0 && len(a) > 0) {
		ui.Fail(opt.Err, "usage: wedplan "+noun+" "+verb+" "+cmd.usage)
		return 2
	}
	msg, err := cmd.run(opt, a)
	return outcome(opt, noun, msg, err)
}

// outcome prints msg or maps err to an exit code.
func outcome(opt Options, noun, msg string, err error) int {
	switch {
	case err == nil:
		ui.OK(opt.Out, msg)
		return 0
	case errors.Is(err, planner.ErrIndex), errors.Is(err, errBadIndex):
		ui.Fail(opt.Err, err.Error())
		fmt.Fprintln(opt.Err, ui.Current().Muted.Render("Hint: run `wedplan "+noun+" ls` to see valid indexes"))
		return 2
	case errors.Is(err, planner.ErrBlank), errors.Is(err, planner.ErrDate):
		ui.Fail(opt.Err, noun+": "+err.Error())
		return 2
	case errors.Is(err, report.ErrShareUnavailable):
		ui.Warn(opt.Err, msg)
		return 0
	case errors.Is(err, report.ErrNothingToExport):
		ui.Fail(opt.Err, "nothing to export")
		return 1
	}
	ui.Fail(opt.Err, err.Error())
	return 1
}

var errBadIndex = errors.New("not a number")

// index parses a 1-based position.
func index(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errBadIndex, s)
	}
	return n - 1, nil
}

func doImport(path string, opt Options) int {
	f, err := os.Open(path)
	if err != nil {
		ui.Fail(opt.Err, "import: "+err.Error())
		return 1
	}
	defer f.Close()

	plan, err := importer.Decode(f)
	if err != nil {
		ui.Fail(opt.Err, "import: "+err.Error())
		return 2
	}
	res, err := importer.Apply(opt.Deps.Ctx, plan, opt.Deps.Planner)
	if err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			ui.Fail(opt.Err, line)
		}
	}
	ui.OK(opt.Out, fmt.Sprintf("imported %d records (%d tasks, %d guests, %d costs, %d contacts, %d dates)",
		res.Total(), res.Tasks, res.Guests, res.Costs, res.Contacts, res.Dates))
	if err != nil {
		return 1
	}
	return 0
}
