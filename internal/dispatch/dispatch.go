// Package dispatch maps confirmed menu items to the flows they start.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/employee-menu/internal/logging/events"
	"github.com/atomicstack/employee-menu/internal/menu"
)

// ErrUnknownAction marks a menu item whose action has no flow. The action
// set is closed, so reaching it is an internal error.
var ErrUnknownAction = errors.New("unknown menu action")

// Flow is an interactive screen that returns control to the menu when done.
type Flow interface {
	Run(ctx context.Context) error
}

// FlowFunc adapts a function to Flow.
type FlowFunc func(ctx context.Context) error

func (f FlowFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Dispatcher routes menu actions to the record entry and listing flows.
type Dispatcher struct {
	entry Flow
	list  Flow
}

// New returns a dispatcher for the given flows.
func New(entry, list Flow) *Dispatcher {
	return &Dispatcher{entry: entry, list: list}
}

// Dispatch runs the flow for item. Exit asks the menu to terminate.
func (d *Dispatcher) Dispatch(ctx context.Context, item menu.Item) (menu.Signal, error) {
	events.Action.Dispatch(item.Label, item.Action.String())
	switch item.Action {
	case menu.ActionNew:
		return menu.SignalResume, d.run(ctx, d.entry, item)
	case menu.ActionDisplay:
		return menu.SignalResume, d.run(ctx, d.list, item)
	case menu.ActionExit:
		return menu.SignalTerminate, nil
	}
	err := fmt.Errorf("%w: %q (%v)", ErrUnknownAction, item.Label, item.Action)
	events.Action.Error(err)
	return menu.SignalTerminate, err
}

func (d *Dispatcher) run(ctx context.Context, flow Flow, item menu.Item) error {
	if flow == nil {
		err := fmt.Errorf("%w: %q has no flow configured", ErrUnknownAction, item.Label)
		events.Action.Error(err)
		return err
	}
	if err := flow.Run(ctx); err != nil {
		events.Action.Error(err)
		return fmt.Errorf("%s: %w", item.Label, err)
	}
	return nil
}
