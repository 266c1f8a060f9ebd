// Package content provides slide-authoring helpers: styled titles and
// bullets, chroma-highlighted code blocks, and captured command output.
package content

import "github.com/charmbracelet/lipgloss"

// Authoring colors, matching the UI chrome palette.
const (
	colorAccent = "86"  // titles
	colorMuted  = "241" // subtitles, hints
	colorText   = "252" // body text
)

// Styles used by the authoring helpers. Callers that want different looks
// can draw on the canvas directly.
var Styles = struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Bullet   lipgloss.Style
	Body     lipgloss.Style
	Output   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Bullet: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText)),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText)),
	Output: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
}
