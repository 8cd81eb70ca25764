// Package keys decodes raw terminal bytes into key events.
package keys

import "fmt"

// Kind tags a key event.
type Kind int

const (
	// Unknown is a recognised escape sequence with no binding (arrows left
	// and right, function keys). It is a no-op everywhere.
	Unknown Kind = iota
	MoveUp
	MoveDown
	JumpFirst
	JumpLast
	Confirm
	Cancel
	Quit
	Literal
)

var kindNames = [...]string{
	Unknown:   "unknown",
	MoveUp:    "move-up",
	MoveDown:  "move-down",
	JumpFirst: "jump-first",
	JumpLast:  "jump-last",
	Confirm:   "confirm",
	Cancel:    "cancel",
	Quit:      "quit",
	Literal:   "literal",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Event is one decoded key press. Byte is only meaningful for Literal.
type Event struct {
	Kind Kind
	Byte byte
}

// Key returns an event of the given kind.
func Key(kind Kind) Event {
	return Event{Kind: kind}
}

// LiteralByte returns a Literal event carrying b.
func LiteralByte(b byte) Event {
	return Event{Kind: Literal, Byte: b}
}

func (e Event) String() string {
	if e.Kind == Literal {
		return fmt.Sprintf("literal(%q)", e.Byte)
	}
	return e.Kind.String()
}
