// Package terminal owns raw-mode access to the controlling terminal.
//
// A Session is acquired per input read through WithRawMode. The captured
// terminal state is reapplied exactly once per acquisition on every exit
// path: normal return, error, panic, or a termination signal delivered while
// the scope is active.
package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/atomicstack/employee-menu/internal/logging"
	"github.com/atomicstack/employee-menu/internal/logging/events"
)

// ErrNotTerminal is reported when the input descriptor is not a tty.
var ErrNotTerminal = errors.New("not a terminal")

// EnvError describes a failure to query or change terminal attributes.
type EnvError struct {
	Op  string
	Err error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *EnvError) Unwrap() error {
	return e.Err
}

// Signals that restore the terminal before the process exits.
var terminationSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

var (
	isTerminalFn = term.IsTerminal
	makeRawFn    = term.MakeRaw
	restoreFn    = term.Restore
	notifyFn     = signal.Notify
	stopNotifyFn = signal.Stop
	exitFn       = os.Exit
	waitFn       = waitReadable
)

// Session reads raw bytes from a terminal input descriptor.
type Session struct {
	in *os.File
	fd int
}

// New returns a session bound to in, usually os.Stdin.
func New(in *os.File) *Session {
	return &Session{in: in, fd: int(in.Fd())}
}

// Fd returns the input descriptor.
func (s *Session) Fd() int {
	return s.fd
}

// Check reports an EnvError when the input is not a terminal.
func (s *Session) Check() error {
	if !isTerminalFn(s.fd) {
		return &EnvError{Op: "check", Err: ErrNotTerminal}
	}
	return nil
}

// WithRawMode puts the terminal in raw mode, runs body, and restores the
// previous attributes before returning body's result.
func (s *Session) WithRawMode(body func() error) (err error) {
	if err := s.Check(); err != nil {
		return err
	}
	snapshot, err := makeRawFn(s.fd)
	if err != nil {
		return &EnvError{Op: "make raw", Err: err}
	}
	events.Terminal.Acquire(s.fd)

	var (
		once       sync.Once
		restoreErr error
	)
	restore := func() {
		once.Do(func() {
			restoreErr = restoreFn(s.fd, snapshot)
			events.Terminal.Restore(s.fd, restoreErr)
			if restoreErr != nil {
				logging.Error(fmt.Errorf("restore terminal: %w", restoreErr))
			}
		})
	}

	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	notifyFn(signals, terminationSignals...)
	go func() {
		select {
		case sig := <-signals:
			events.Terminal.Signal(s.fd, sig.String())
			restore()
			exitFn(exitCode(sig))
		case <-done:
		}
	}()

	defer func() {
		stopNotifyFn(signals)
		close(done)
		restore()
		if err == nil && restoreErr != nil {
			err = &EnvError{Op: "restore", Err: restoreErr}
		}
	}()

	return body()
}

// ReadByte blocks until one byte is available. Zero-length reads are retried.
func (s *Session) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := s.in.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// ReadByteWithin waits at most timeout for a byte. The boolean is false when
// nothing arrived in time.
func (s *Session) ReadByteWithin(timeout time.Duration) (byte, bool, error) {
	ready, err := waitFn(s.fd, timeout)
	if err != nil {
		return 0, false, fmt.Errorf("poll input: %w", err)
	}
	if !ready {
		return 0, false, nil
	}
	b, err := s.ReadByte()
	if err != nil {
		return 0, false, err
	}
	return b, true, nil
}

func exitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
