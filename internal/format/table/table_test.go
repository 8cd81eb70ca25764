package table

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFormatAlignsColumns(t *testing.T) {
	columns := []Column{
		{Header: "ID", Align: AlignRight},
		{Header: "Name"},
		{Header: "Salary", Align: AlignRight},
	}
	rows := [][]string{
		{"1", "Ada", "120000"},
		{"12", "Grace Hopper", "95"},
	}
	got := Format(columns, rows)
	want := []string{
		"ID  Name          Salary",
		"──  ────────────  ──────",
		" 1  Ada           120000",
		"12  Grace Hopper      95",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatOmitsTrailingPadding(t *testing.T) {
	got := Format([]Column{{Header: "Name"}, {Header: "Dept"}}, [][]string{{"Al", "Ops"}})
	for _, line := range got {
		if strings.HasSuffix(line, " ") {
			t.Fatalf("expected no trailing spaces, got %q", line)
		}
	}
}

func TestFormatTruncatesToMaxWidth(t *testing.T) {
	got := Format([]Column{{Header: "Name", MaxWidth: 6}}, [][]string{{"Bartholomew"}})
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(got))
	}
	if ansi.StringWidth(got[2]) != 6 {
		t.Fatalf("expected truncated width 6, got %d (%q)", ansi.StringWidth(got[2]), got[2])
	}
	if !strings.HasSuffix(got[2], "…") {
		t.Fatalf("expected ellipsis, got %q", got[2])
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	got := Format([]Column{{Header: "N"}, {Header: "X"}}, [][]string{{"日本", "a"}, {"ab", "b"}})
	if ansi.StringWidth(got[2]) != ansi.StringWidth(got[3]) {
		t.Fatalf("expected equal cell widths, got %q and %q", got[2], got[3])
	}
}

func TestFormatNoColumns(t *testing.T) {
	if got := Format(nil, [][]string{{"a"}}); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}
