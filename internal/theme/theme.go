package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Container         *lipgloss.Style
	FocusedContainer  *lipgloss.Style
	Value             *lipgloss.Style
	Placeholder       *lipgloss.Style
	Badge             *lipgloss.Style
	FocusedBadge      *lipgloss.Style
	BadgeRemove       *lipgloss.Style
	ClearButton       *lipgloss.Style
	FocusedClear      *lipgloss.Style
	Divider           *lipgloss.Style
	Caret             *lipgloss.Style
	Options           *lipgloss.Style
	Option            *lipgloss.Style
	SelectedOption    *lipgloss.Style
	HighlightedOption *lipgloss.Style
	Header            *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	Error             *lipgloss.Style
}

var defaultStyles = Styles{
	Container: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	),
	FocusedContainer: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	Value: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Badge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
	),
	FocusedBadge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	BadgeRemove: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Background(lipgloss.Color("238")),
	),
	ClearButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	FocusedClear: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Divider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Caret: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Options: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")),
	),
	Option: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedOption: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")),
	),
	HighlightedOption: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
