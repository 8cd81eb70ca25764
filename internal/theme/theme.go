package theme

import "charm.land/lipgloss/v2"

// Styles describes reusable Lip Gloss styles shared across the screens.
type Styles struct {
	Border                *lipgloss.Style
	Item                  *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Help                  *lipgloss.Style
	Header                *lipgloss.Style
	Info                  *lipgloss.Style
	Prompt                *lipgloss.Style
	Error                 *lipgloss.Style
	Success               *lipgloss.Style
}

var defaultStyles = Styles{
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle(),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	),
	Help: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a style set without colours or emphasis.
func Plain() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Border:                ptr(plain),
		Item:                  ptr(plain),
		SelectedItemIndicator: ptr(plain),
		SelectedItem:          ptr(plain),
		Help:                  ptr(plain),
		Header:                ptr(plain),
		Info:                  ptr(plain),
		Prompt:                ptr(plain),
		Error:                 ptr(plain),
		Success:               ptr(plain),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
