package events

import "github.com/atomicstack/employee-menu/internal/logging"

type RecordTracer struct{}

type recordReason string

const (
	RecordReasonBlank recordReason = "blank"
	RecordReasonEOF   recordReason = "eof"
)

var Record = RecordTracer{}

func (RecordTracer) Add(id int, name string) {
	logging.Trace("record.add", map[string]interface{}{"id": id, "name": name})
}

func (RecordTracer) Cancel(reason recordReason) {
	logging.Trace("record.cancel", map[string]interface{}{"reason": string(reason)})
}

func (RecordTracer) Invalid(field, input string, err error) {
	logging.Trace("record.invalid", map[string]interface{}{"field": field, "input": input, "error": err.Error()})
}

func (RecordTracer) Full(capacity int) {
	logging.Trace("record.full", map[string]interface{}{"capacity": capacity})
}

func (RecordTracer) List(count int) {
	logging.Trace("record.list", map[string]interface{}{"count": count})
}
