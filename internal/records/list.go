package records

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/atomicstack/employee-menu/internal/employee"
	"github.com/atomicstack/employee-menu/internal/format/table"
	"github.com/atomicstack/employee-menu/internal/keys"
	"github.com/atomicstack/employee-menu/internal/logging/events"
	"github.com/atomicstack/employee-menu/internal/theme"
	"github.com/atomicstack/employee-menu/internal/view"
)

const (
	emptyMessage  = "No employee records stored."
	returnMessage = "Press Enter or Backspace to return..."
	nameMaxWidth  = 24
)

// KeySource yields decoded key events.
type KeySource interface {
	Next() (keys.Event, error)
}

// List shows the stored records and waits for the user to return.
type List struct {
	store  *employee.Store
	out    io.Writer
	styles *theme.Styles
	keys   KeySource
}

// NewList returns a listing flow over store.
func NewList(store *employee.Store, out io.Writer, styles *theme.Styles, source KeySource) *List {
	if styles == nil {
		styles = theme.Default()
	}
	return &List{store: store, out: out, styles: styles, keys: source}
}

var listColumns = []table.Column{
	{Header: "ID", Align: table.AlignRight},
	{Header: "Name", MaxWidth: nameMaxWidth},
	{Header: "Age", Align: table.AlignRight},
	{Header: "Department"},
	{Header: "Salary", Align: table.AlignRight},
}

// Lines returns the listing body for recs without styling.
func Lines(recs []employee.Record) []string {
	if len(recs) == 0 {
		return []string{emptyMessage}
	}
	rows := make([][]string, len(recs))
	for i, rec := range recs {
		rows[i] = []string{
			strconv.Itoa(rec.ID),
			rec.Name,
			strconv.Itoa(rec.Age),
			rec.Department,
			humanize.Comma(int64(rec.Salary)),
		}
	}
	return table.Format(listColumns, rows)
}

// Run renders the records, then reads keys until Confirm or Cancel. Every
// other key, Quit included, is ignored. Closed input returns to the menu.
func (l *List) Run(ctx context.Context) error {
	recs := l.store.Records()
	events.Record.List(len(recs))
	if _, err := io.WriteString(l.out, l.render(recs)); err != nil {
		return fmt.Errorf("render records: %w", err)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, err := l.keys.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch ev.Kind {
		case keys.Confirm, keys.Cancel:
			return nil
		}
	}
}

func (l *List) render(recs []employee.Record) string {
	var b strings.Builder
	b.WriteString(view.ClearSequence)
	b.WriteString(l.styles.Header.Render("Employee records"))
	b.WriteString("\n\n")
	for i, line := range Lines(recs) {
		switch {
		case len(recs) == 0:
			line = l.styles.Info.Render(line)
		case i == 0:
			line = l.styles.Header.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(l.styles.Help.Render(returnMessage))
	return b.String()
}
