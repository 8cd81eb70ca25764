package events

import "github.com/atomicstack/employee-menu/internal/logging"

type MenuTracer struct{}

type KeyTracer struct{}

var (
	Menu = MenuTracer{}
	Key  = KeyTracer{}
)

func (MenuTracer) Cursor(cursor int, label string) {
	logging.Trace("menu.cursor", map[string]interface{}{"cursor": cursor, "label": label})
}

func (MenuTracer) Confirm(cursor int, label string) {
	logging.Trace("menu.confirm", map[string]interface{}{"cursor": cursor, "label": label})
}

func (MenuTracer) Terminate(reason string) {
	logging.Trace("menu.terminate", map[string]interface{}{"reason": reason})
}

func (KeyTracer) Decoded(kind string, raw []byte) {
	logging.Trace("key.decoded", map[string]interface{}{"kind": kind, "raw": raw})
}
