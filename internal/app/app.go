package app

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/colorprofile"

	"github.com/atomicstack/employee-menu/internal/dispatch"
	"github.com/atomicstack/employee-menu/internal/employee"
	"github.com/atomicstack/employee-menu/internal/keys"
	"github.com/atomicstack/employee-menu/internal/logging/events"
	"github.com/atomicstack/employee-menu/internal/menu"
	"github.com/atomicstack/employee-menu/internal/records"
	"github.com/atomicstack/employee-menu/internal/terminal"
	"github.com/atomicstack/employee-menu/internal/theme"
	"github.com/atomicstack/employee-menu/internal/view"
)

// Config describes user-provided application options.
type Config struct {
	EscapeTimeout time.Duration
	Capacity      int
	Pause         time.Duration
	NoColor       bool
}

// Exit statuses.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitInternal = 70
)

// Scope is the raw-mode terminal the menu reads keys through.
type Scope interface {
	keys.Scope
	keys.Source
	Check() error
}

// Run bootstraps the menu on the process's standard streams.
func Run(cfg Config) error {
	return RunWith(context.Background(), cfg, terminal.New(os.Stdin), os.Stdin, os.Stdout, os.Environ())
}

// RunWith wires the menu to an explicit terminal, line input and output.
// It returns once the menu terminates.
func RunWith(ctx context.Context, cfg Config, term Scope, lineInput io.Reader, out io.Writer, environ []string) error {
	if err := term.Check(); err != nil {
		return err
	}

	styles := theme.Default()
	writer := colorprofile.NewWriter(out, environ)
	if cfg.NoColor {
		styles = theme.Plain()
		writer.Profile = colorprofile.Ascii
	}

	screen := view.New(writer, styles)
	reader := keys.NewReader(term, keys.NewDecoder(term, cfg.EscapeTimeout))
	store := employee.NewStore(cfg.Capacity)
	flows := dispatch.New(
		records.NewEntry(store, lineInput, writer, styles, cfg.Pause),
		records.NewList(store, writer, styles, reader),
	)

	machine := menu.NewMachine(menu.RootItems(), flows)
	err := machine.Run(ctx, screen, reader)
	events.App.Stop(machine.Reason())
	return err
}

// ExitCode maps a Run error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, dispatch.ErrUnknownAction):
		return ExitInternal
	default:
		return ExitFailure
	}
}
