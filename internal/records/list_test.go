package records

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/employee-menu/internal/employee"
	"github.com/atomicstack/employee-menu/internal/keys"
	"github.com/atomicstack/employee-menu/internal/testutil"
	"github.com/atomicstack/employee-menu/internal/theme"
	"github.com/atomicstack/employee-menu/internal/view"
)

type scriptedKeys struct {
	events []keys.Event
	err    error
	reads  int
}

func (s *scriptedKeys) Next() (keys.Event, error) {
	if s.reads >= len(s.events) {
		if s.err != nil {
			return keys.Event{}, s.err
		}
		return keys.Event{}, io.EOF
	}
	ev := s.events[s.reads]
	s.reads++
	return ev, nil
}

func TestLinesEmpty(t *testing.T) {
	got := Lines(nil)
	if len(got) != 1 || got[0] != emptyMessage {
		t.Fatalf("expected empty message, got %q", got)
	}
}

func TestLinesFormatsRecords(t *testing.T) {
	got := Lines([]employee.Record{
		{ID: 1, Name: "Ada Lovelace", Age: 36, Department: "Engineering", Salary: 120000},
		{ID: 2, Name: "Grace Hopper", Age: 45, Department: "Support", Salary: 80000},
	})
	if len(got) != 4 {
		t.Fatalf("expected header, rule and 2 rows, got %q", got)
	}
	if !strings.HasPrefix(got[0], "ID  Name") {
		t.Fatalf("unexpected header %q", got[0])
	}
	if !strings.Contains(got[2], "Ada Lovelace") || !strings.HasSuffix(got[2], "120,000") {
		t.Fatalf("unexpected first row %q", got[2])
	}
	if !strings.HasSuffix(got[3], " 80,000") {
		t.Fatalf("expected right-aligned salary, got %q", got[3])
	}
}

func TestLinesGolden(t *testing.T) {
	got := Lines([]employee.Record{
		{ID: 1, Name: "Ada Lovelace", Age: 36, Department: "Engineering", Salary: 120000},
		{ID: 2, Name: "Grace Hopper", Age: 45, Department: "Operations", Salary: 98500},
	})
	testutil.AssertGolden(t, "records_list.golden", testutil.JoinLines(got))
}

func TestLinesTruncatesLongNames(t *testing.T) {
	got := Lines([]employee.Record{{ID: 1, Name: strings.Repeat("n", 40), Age: 30, Department: "Sales"}})
	if !strings.Contains(got[2], strings.Repeat("n", nameMaxWidth-1)+"…") {
		t.Fatalf("expected truncated name, got %q", got[2])
	}
}

func TestListRunWaitsForConfirmOrCancel(t *testing.T) {
	for _, final := range []keys.Kind{keys.Confirm, keys.Cancel} {
		store := employee.NewStore(0)
		var out bytes.Buffer
		src := &scriptedKeys{events: []keys.Event{
			keys.Key(keys.MoveDown),
			keys.LiteralByte('x'),
			keys.Key(keys.Unknown),
			keys.Key(final),
			keys.Key(keys.Confirm),
		}}
		l := NewList(store, &out, theme.Plain(), src)
		if err := l.Run(context.Background()); err != nil {
			t.Fatalf("%v: unexpected error: %v", final, err)
		}
		if src.reads != 4 {
			t.Fatalf("%v: expected return after 4 reads, got %d", final, src.reads)
		}
	}
}

func TestListRunIgnoresQuit(t *testing.T) {
	store := employee.NewStore(0)
	var out bytes.Buffer
	src := &scriptedKeys{events: []keys.Event{
		keys.Key(keys.Quit),
		keys.LiteralByte('x'),
		keys.Key(keys.Quit),
		keys.Key(keys.Confirm),
		keys.Key(keys.Confirm),
	}}
	l := NewList(store, &out, theme.Plain(), src)
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.reads != 4 {
		t.Fatalf("expected listing to block until Confirm on read 4, returned after %d", src.reads)
	}
}

func TestListRunRendersRecords(t *testing.T) {
	store := employee.NewStore(0)
	if _, err := store.Add(employee.Record{Name: "Ada", Age: 36, Department: "Finance", Salary: 1000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	l := NewList(store, &out, theme.Default(), &scriptedKeys{events: []keys.Event{keys.Key(keys.Confirm)}})
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), view.ClearSequence) {
		t.Fatalf("expected listing to clear the screen first")
	}
	text := ansi.Strip(out.String())
	for _, want := range []string{"Employee records", "Ada", "Finance", "1,000", returnMessage} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in listing, got:\n%s", want, text)
		}
	}
}

func TestListRunShowsEmptyMessage(t *testing.T) {
	var out bytes.Buffer
	l := NewList(employee.NewStore(0), &out, theme.Plain(), &scriptedKeys{events: []keys.Event{keys.Key(keys.Cancel)}})
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), emptyMessage) {
		t.Fatalf("expected empty message, got:\n%s", out.String())
	}
}

func TestListRunEOFReturns(t *testing.T) {
	var out bytes.Buffer
	l := NewList(employee.NewStore(0), &out, theme.Plain(), &scriptedKeys{})
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("expected EOF to return cleanly, got %v", err)
	}
}

func TestListRunPropagatesKeyErrors(t *testing.T) {
	boom := errors.New("not a terminal")
	var out bytes.Buffer
	l := NewList(employee.NewStore(0), &out, theme.Plain(), &scriptedKeys{err: boom})
	if err := l.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected key error, got %v", err)
	}
}
