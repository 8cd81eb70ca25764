package events

import "github.com/atomicstack/employee-menu/internal/logging"

type TerminalTracer struct{}

var Terminal = TerminalTracer{}

func (TerminalTracer) Acquire(fd int) {
	logging.Trace("terminal.raw.acquire", map[string]interface{}{"fd": fd})
}

func (TerminalTracer) Restore(fd int, err error) {
	payload := map[string]interface{}{"fd": fd}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("terminal.raw.restore", payload)
}

func (TerminalTracer) Signal(fd int, sig string) {
	logging.Trace("terminal.signal", map[string]interface{}{"fd": fd, "signal": sig})
}
