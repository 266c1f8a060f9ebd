package ui

import "github.com/charmbracelet/lipgloss"

// Chrome colors
const (
	ColorAccent = "86"  // Cyan/green - deck title, position
	ColorMuted  = "241" // Gray - hints, help
	ColorText   = "252" // Light gray - normal text
)

// Styles contains shared style definitions for the presentation chrome.
var Styles = struct {
	Title    lipgloss.Style // deck title in the status bar
	Position lipgloss.Style // "i/n" slide position
	Hint     lipgloss.Style // help/hint text
	Bar      lipgloss.Style // the status bar itself
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Position: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Bar: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
}
