package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atomicstack/employee-menu/internal/keys"
	"github.com/atomicstack/employee-menu/internal/logging"
	"github.com/atomicstack/employee-menu/internal/logging/events"
)

// State is the navigation state.
type State int

const (
	Browsing State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "browsing"
}

// Signal tells the machine what to do after an action returns.
type Signal int

const (
	SignalResume Signal = iota
	SignalTerminate
)

// Dispatcher runs the action bound to a confirmed item.
type Dispatcher interface {
	Dispatch(ctx context.Context, item Item) (Signal, error)
}

// Renderer draws the menu frame.
type Renderer interface {
	Render(items Items, selected int) error
}

// KeySource yields decoded key events.
type KeySource interface {
	Next() (keys.Event, error)
}

// Machine holds the selection and applies key events to it.
type Machine struct {
	items      Items
	cursor     int
	state      State
	dispatcher Dispatcher
	reason     string
}

// NewMachine starts browsing items with the first entry selected.
func NewMachine(items Items, dispatcher Dispatcher) *Machine {
	if items.Len() == 0 {
		items = RootItems()
	}
	return &Machine{items: items, dispatcher: dispatcher}
}

// Selected returns the current selection index.
func (m *Machine) Selected() int {
	return m.cursor
}

// Current returns the selected item.
func (m *Machine) Current() Item {
	return m.items.At(m.cursor)
}

// Items returns the menu entries.
func (m *Machine) Items() Items {
	return m.items
}

// State returns the navigation state.
func (m *Machine) State() State {
	return m.state
}

// Reason describes why the machine terminated, empty while browsing.
func (m *Machine) Reason() string {
	return m.reason
}

// Apply transitions the machine for one key event. Terminated is absorbing.
func (m *Machine) Apply(ctx context.Context, ev keys.Event) error {
	if m.state == Terminated {
		return nil
	}
	switch ev.Kind {
	case keys.MoveUp:
		m.traceCursor(m.moveCursorUp())
	case keys.MoveDown:
		m.traceCursor(m.moveCursorDown())
	case keys.JumpFirst:
		m.traceCursor(m.moveCursorHome())
	case keys.JumpLast:
		m.traceCursor(m.moveCursorEnd())
	case keys.Confirm:
		return m.confirm(ctx)
	case keys.Quit:
		m.terminate("quit")
	case keys.Cancel, keys.Literal, keys.Unknown:
	}
	return nil
}

func (m *Machine) confirm(ctx context.Context) error {
	item := m.Current()
	events.Menu.Confirm(m.cursor, item.Label)
	if m.dispatcher == nil {
		return fmt.Errorf("dispatch %q: no dispatcher configured", item.Label)
	}
	signal, err := m.dispatcher.Dispatch(ctx, item)
	if err != nil {
		return err
	}
	if signal == SignalTerminate {
		m.terminate(item.Action.String())
	}
	return nil
}

func (m *Machine) terminate(reason string) {
	m.state = Terminated
	m.reason = reason
	events.Menu.Terminate(reason)
}

func (m *Machine) traceCursor(moved bool) {
	if moved {
		events.Menu.Cursor(m.cursor, m.Current().Label)
	}
}

// Run redraws, reads a key and applies it until the machine terminates.
// A closed input stream counts as Quit.
func (m *Machine) Run(ctx context.Context, renderer Renderer, source KeySource) error {
	for m.state != Terminated {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := renderer.Render(m.items, m.cursor); err != nil {
			logging.Error(fmt.Errorf("render menu: %w", err))
		}
		ev, err := source.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.terminate("eof")
				return nil
			}
			return err
		}
		if err := m.Apply(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}
