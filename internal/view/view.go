// Package view draws the menu frame. Rendering is a pure function of the
// items and the selected index.
package view

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/employee-menu/internal/menu"
	"github.com/atomicstack/employee-menu/internal/theme"
)

const (
	// Title is drawn centred in the top border.
	Title = "MENU"
	// HelpLine lists the key bindings under the frame.
	HelpLine = "↑↓ Move | Enter Select | Esc Exit | Backspace Main | Home New | End Exit"

	minInnerWidth = 21
	// newline works whether or not output post-processing is enabled.
	newline = "\r\n"
)

// ClearSequence erases the display and homes the cursor.
const ClearSequence = ansi.EraseEntireScreen + ansi.CursorHomePosition

// Screen writes menu frames to a terminal output stream.
type Screen struct {
	out    io.Writer
	styles *theme.Styles
}

// New returns a screen writing to out. A nil style set uses theme.Default.
func New(out io.Writer, styles *theme.Styles) *Screen {
	if styles == nil {
		styles = theme.Default()
	}
	return &Screen{out: out, styles: styles}
}

// Styles returns the style set used by the screen.
func (s *Screen) Styles() *theme.Styles {
	return s.styles
}

// Out returns the output stream.
func (s *Screen) Out() io.Writer {
	return s.out
}

// Render clears the screen and draws the menu with selected highlighted.
func (s *Screen) Render(items menu.Items, selected int) error {
	_, err := io.WriteString(s.out, Frame(items, selected, s.styles))
	return err
}

// Clear erases the display.
func (s *Screen) Clear() error {
	_, err := io.WriteString(s.out, ClearSequence)
	return err
}

// Frame returns the full escape-sequence output for one menu redraw.
func Frame(items menu.Items, selected int, styles *theme.Styles) string {
	inner := innerWidth(items)
	var b strings.Builder
	b.WriteString(ClearSequence)
	b.WriteString(styles.Border.Render(topBorder(inner)))
	b.WriteString(newline)
	for i := 0; i < items.Len(); i++ {
		b.WriteString(itemLine(items.At(i).Label, i == selected, styles))
		b.WriteString(newline)
	}
	b.WriteString(styles.Border.Render("╚" + strings.Repeat("═", inner) + "╝"))
	b.WriteString(newline)
	b.WriteString(newline)
	b.WriteString(styles.Help.Render(HelpLine))
	b.WriteString(newline)
	return b.String()
}

func itemLine(label string, selected bool, styles *theme.Styles) string {
	if selected {
		return " " + styles.SelectedItemIndicator.Render("›") + " " + styles.SelectedItem.Render(label)
	}
	return "   " + styles.Item.Render(label)
}

func innerWidth(items menu.Items) int {
	width := minInnerWidth
	for _, label := range items.Labels() {
		if w := ansi.StringWidth(label) + 4; w > width {
			width = w
		}
	}
	return width
}

func topBorder(inner int) string {
	title := " " + Title + " "
	fill := inner - ansi.StringWidth(title)
	if fill < 0 {
		fill = 0
	}
	right := fill / 2
	left := fill - right
	return "╔" + strings.Repeat("═", left) + title + strings.Repeat("═", right) + "╗"
}
