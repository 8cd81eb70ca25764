package keys

import (
	"errors"
	"io"
	"time"

	"github.com/atomicstack/employee-menu/internal/logging/events"
)

const (
	byteCtrlC     = 3
	byteCtrlD     = 4
	byteBackspace = 8
	byteLineFeed  = 10
	byteReturn    = 13
	byteEscape    = 27
	byteDelete    = 127

	// maxSequence bounds the bytes consumed for one CSI sequence.
	maxSequence = 16
)

// DefaultEscapeTimeout is how long a lone Escape waits for a sequence to follow.
const DefaultEscapeTimeout = 50 * time.Millisecond

// Source supplies raw input bytes.
type Source interface {
	// ReadByte blocks for exactly one byte.
	ReadByte() (byte, error)
	// ReadByteWithin waits at most d; false means nothing arrived.
	ReadByteWithin(d time.Duration) (byte, bool, error)
}

// Decoder turns raw bytes into Events.
//
// With a positive escape timeout, an Escape not followed by another byte
// within the window is a bare Escape press (Quit). With a zero timeout the
// decoder always blocks for the bytes following Escape, so a bare Escape is
// only recognised after another key arrives.
type Decoder struct {
	src           Source
	escapeTimeout time.Duration
}

// NewDecoder returns a decoder reading from src.
func NewDecoder(src Source, escapeTimeout time.Duration) *Decoder {
	if escapeTimeout < 0 {
		escapeTimeout = 0
	}
	return &Decoder{src: src, escapeTimeout: escapeTimeout}
}

// Next blocks until one complete key event has been read.
func (d *Decoder) Next() (Event, error) {
	b, err := d.src.ReadByte()
	if err != nil {
		return Event{}, err
	}
	if b != byteEscape {
		ev := decodeByte(b)
		events.Key.Decoded(ev.String(), []byte{b})
		return ev, nil
	}
	ev, raw, err := d.escape()
	if err != nil {
		return Event{}, err
	}
	events.Key.Decoded(ev.String(), raw)
	return ev, nil
}

func decodeByte(b byte) Event {
	switch b {
	case byteLineFeed, byteReturn:
		return Key(Confirm)
	case byteDelete, byteBackspace:
		return Key(Cancel)
	case byteCtrlC, byteCtrlD:
		return Key(Quit)
	default:
		return LiteralByte(b)
	}
}

// escape decodes what follows an Escape byte. Running out of input while a
// sequence is pending resolves to Quit.
func (d *Decoder) escape() (Event, []byte, error) {
	raw := []byte{byteEscape}
	intro, ok, err := d.follow()
	if err != nil || !ok {
		return resolveQuit(raw, err)
	}
	raw = append(raw, intro)

	switch intro {
	case '[':
		return d.csi(raw)
	case 'O':
		final, ok, err := d.follow()
		if err != nil || !ok {
			return resolveQuit(raw, err)
		}
		raw = append(raw, final)
		if ev, found := navigationFinals[final]; found {
			return ev, raw, nil
		}
		return Key(Unknown), raw, nil
	default:
		if d.escapeTimeout == 0 {
			// Blocking mode always consumes two bytes after Escape.
			next, ok, err := d.follow()
			if err != nil || !ok {
				return resolveQuit(raw, err)
			}
			raw = append(raw, next)
		}
		return Key(Quit), raw, nil
	}
}

var navigationFinals = map[byte]Event{
	'A': Key(MoveUp),
	'B': Key(MoveDown),
	'H': Key(JumpFirst),
	'F': Key(JumpLast),
}

var tildeKeys = map[string]Event{
	"1": Key(JumpFirst),
	"7": Key(JumpFirst),
	"4": Key(JumpLast),
	"8": Key(JumpLast),
}

// csi reads parameter bytes up to the final byte of an ESC [ sequence.
func (d *Decoder) csi(raw []byte) (Event, []byte, error) {
	var params []byte
	for len(raw) < maxSequence {
		b, ok, err := d.follow()
		if err != nil || !ok {
			return resolveQuit(raw, err)
		}
		raw = append(raw, b)
		switch {
		case b >= 0x20 && b <= 0x3f:
			params = append(params, b)
		case b >= 0x40 && b <= 0x7e:
			if len(params) == 0 {
				if ev, found := navigationFinals[b]; found {
					return ev, raw, nil
				}
			}
			if b == '~' {
				if ev, found := tildeKeys[string(params)]; found {
					return ev, raw, nil
				}
			}
			return Key(Unknown), raw, nil
		default:
			return Key(Unknown), raw, nil
		}
	}
	return Key(Unknown), raw, nil
}

func (d *Decoder) follow() (byte, bool, error) {
	if d.escapeTimeout == 0 {
		b, err := d.src.ReadByte()
		if err != nil {
			return 0, false, err
		}
		return b, true, nil
	}
	return d.src.ReadByteWithin(d.escapeTimeout)
}

func resolveQuit(raw []byte, err error) (Event, []byte, error) {
	if err != nil && !errors.Is(err, io.EOF) {
		return Event{}, raw, err
	}
	return Key(Quit), raw, nil
}
