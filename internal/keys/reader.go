package keys

// Scope runs fn with the terminal in raw mode.
type Scope interface {
	WithRawMode(fn func() error) error
}

// Reader decodes one key per raw-mode acquisition, so the terminal is back
// in its prior mode whenever control is outside Next.
type Reader struct {
	scope   Scope
	decoder *Decoder
}

// NewReader pairs a raw-mode scope with a decoder.
func NewReader(scope Scope, decoder *Decoder) *Reader {
	return &Reader{scope: scope, decoder: decoder}
}

// Next reads one key inside a raw-mode scope.
func (r *Reader) Next() (Event, error) {
	var ev Event
	err := r.scope.WithRawMode(func() error {
		var err error
		ev, err = r.decoder.Next()
		return err
	})
	return ev, err
}
