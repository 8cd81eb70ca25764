package events

import "github.com/atomicstack/employee-menu/internal/logging"

type AppTracer struct{}

type ActionTracer struct{}

var (
	App    = AppTracer{}
	Action = ActionTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Dispatch(label, action string) {
	logging.Trace("action.dispatch", map[string]interface{}{"label": label, "action": action})
}
