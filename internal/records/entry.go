// Package records implements the employee entry and listing screens that
// the menu dispatches to.
package records

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atomicstack/employee-menu/internal/employee"
	"github.com/atomicstack/employee-menu/internal/logging/events"
	"github.com/atomicstack/employee-menu/internal/theme"
	"github.com/atomicstack/employee-menu/internal/view"
)

var (
	errBlankName   = errors.New("blank name")
	errInputClosed = errors.New("input closed")
)

// Entry prompts for an employee record line by line. It runs with the
// terminal in its normal canonical mode.
type Entry struct {
	store  *employee.Store
	in     io.Reader
	out    io.Writer
	styles *theme.Styles
	pause  time.Duration
	sleep  func(time.Duration)
}

// NewEntry returns an entry flow adding to store. pause is how long the
// result message stays on screen.
func NewEntry(store *employee.Store, in io.Reader, out io.Writer, styles *theme.Styles, pause time.Duration) *Entry {
	if styles == nil {
		styles = theme.Default()
	}
	return &Entry{store: store, in: in, out: out, styles: styles, pause: pause, sleep: time.Sleep}
}

// Run collects one record. Invalid values re-prompt the same field; a blank
// name or closed input cancels without storing anything.
func (e *Entry) Run(ctx context.Context) error {
	fmt.Fprint(e.out, view.ClearSequence)
	fmt.Fprintln(e.out, e.styles.Header.Render("New employee record"))
	fmt.Fprintln(e.out, e.styles.Info.Render("Leave the name blank to cancel."))
	fmt.Fprintln(e.out)

	rec, err := e.collect(ctx, bufio.NewScanner(e.in))
	switch {
	case errors.Is(err, errBlankName):
		events.Record.Cancel(events.RecordReasonBlank)
		e.finish(e.styles.Info.Render("Cancelled."))
		return nil
	case errors.Is(err, errInputClosed):
		events.Record.Cancel(events.RecordReasonEOF)
		e.finish(e.styles.Info.Render("Cancelled."))
		return nil
	case err != nil:
		return err
	}

	stored, err := e.store.Add(rec)
	if errors.Is(err, employee.ErrStoreFull) {
		events.Record.Full(e.store.Capacity())
		e.finish(e.styles.Error.Render(fmt.Sprintf("Not saved: %v.", err)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("store record: %w", err)
	}
	events.Record.Add(stored.ID, stored.Name)
	e.finish(e.styles.Success.Render(fmt.Sprintf("Saved employee #%d.", stored.ID)))
	return nil
}

func (e *Entry) collect(ctx context.Context, lines *bufio.Scanner) (employee.Record, error) {
	var rec employee.Record
	err := e.ask(ctx, lines, "name", "Name", func(input string) error {
		if strings.TrimSpace(input) == "" {
			return errBlankName
		}
		name, err := employee.ParseName(input)
		rec.Name = name
		return err
	})
	if err != nil {
		return rec, err
	}
	ageLabel := fmt.Sprintf("Age (%d-%d)", employee.MinAge, employee.MaxAge)
	if err := e.ask(ctx, lines, "age", ageLabel, func(input string) error {
		age, err := employee.ParseAge(input)
		rec.Age = age
		return err
	}); err != nil {
		return rec, err
	}
	deptLabel := fmt.Sprintf("Department (%s)", strings.Join(employee.Departments, ", "))
	if err := e.ask(ctx, lines, "department", deptLabel, func(input string) error {
		dept, err := employee.ResolveDepartment(input)
		rec.Department = dept
		return err
	}); err != nil {
		return rec, err
	}
	if err := e.ask(ctx, lines, "salary", "Salary", func(input string) error {
		salary, err := employee.ParseSalary(input)
		rec.Salary = salary
		return err
	}); err != nil {
		return rec, err
	}
	return rec, nil
}

// ask prompts until accept succeeds or returns one of the cancel errors.
func (e *Entry) ask(ctx context.Context, lines *bufio.Scanner, field, label string, accept func(string) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(e.out, e.styles.Prompt.Render(label+": "))
		if !lines.Scan() {
			fmt.Fprintln(e.out)
			if err := lines.Err(); err != nil {
				return fmt.Errorf("read %s: %w", field, err)
			}
			return errInputClosed
		}
		input := lines.Text()
		err := accept(input)
		if err == nil {
			return nil
		}
		if errors.Is(err, errBlankName) {
			return err
		}
		events.Record.Invalid(field, input, err)
		fmt.Fprintln(e.out, e.styles.Error.Render("  "+invalidMessage(err)))
	}
}

func invalidMessage(err error) string {
	var rangeErr *employee.RangeError
	var ambiguous *employee.AmbiguousError
	switch {
	case errors.As(err, &rangeErr):
		return fmt.Sprintf("Enter a number from %d to %d.", rangeErr.Min, rangeErr.Max)
	case errors.As(err, &ambiguous):
		return fmt.Sprintf("Did you mean: %s?", strings.Join(ambiguous.Candidates, ", "))
	case errors.Is(err, employee.ErrNotNumber):
		return "Enter a whole number."
	case errors.Is(err, employee.ErrDepartment):
		return fmt.Sprintf("Choose one of: %s.", strings.Join(employee.Departments, ", "))
	case errors.Is(err, employee.ErrNameTooLong):
		return fmt.Sprintf("Name must be at most %d characters.", employee.MaxNameLength)
	}
	return err.Error()
}

func (e *Entry) finish(message string) {
	fmt.Fprintln(e.out, message)
	if e.pause > 0 {
		e.sleep(e.pause)
	}
}
