package menu

import (
	"errors"
	"fmt"
)

// Action identifies what confirming an item does. The set is closed.
type Action int

const (
	ActionNew Action = iota + 1
	ActionDisplay
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionNew:
		return "new"
	case ActionDisplay:
		return "display"
	case ActionExit:
		return "exit"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Item represents a selectable menu entry.
type Item struct {
	Label  string
	Action Action
}

// ErrNoItems is returned when a menu is built without entries.
var ErrNoItems = errors.New("menu requires at least one item")

// Items is an immutable, non-empty, ordered list of menu entries.
type Items struct {
	items []Item
}

// NewItems copies items into an immutable list.
func NewItems(items ...Item) (Items, error) {
	if len(items) == 0 {
		return Items{}, ErrNoItems
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return Items{items: dup}, nil
}

// RootItems returns the top-level menu entries.
func RootItems() Items {
	return Items{items: []Item{
		{Label: "New", Action: ActionNew},
		{Label: "Display", Action: ActionDisplay},
		{Label: "Exit", Action: ActionExit},
	}}
}

// Len returns the number of entries.
func (l Items) Len() int {
	return len(l.items)
}

// At returns the entry at index i.
func (l Items) At(i int) Item {
	return l.items[i]
}

// All returns a copy of the entries in display order.
func (l Items) All() []Item {
	dup := make([]Item, len(l.items))
	copy(dup, l.items)
	return dup
}

// Labels returns the entry labels in display order.
func (l Items) Labels() []string {
	labels := make([]string, len(l.items))
	for i, item := range l.items {
		labels[i] = item.Label
	}
	return labels
}
