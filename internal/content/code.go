package content

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"slidedeck/internal/canvas"
)

// highlightStyle is the chroma style code blocks are rendered with.
const highlightStyle = "monokai"

// Code draws a syntax-highlighted code block at (x, y). Each token run
// becomes a canvas element styled from the chroma style entry. Unknown
// languages fall back to chroma's plain-text lexer.
func Code(c *canvas.Canvas, x, y int, source, lang string) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return err
	}
	style := styles.Get(highlightStyle)

	col, row := x, y
	for _, token := range it.Tokens() {
		ts := tokenStyle(style.Get(token.Type))
		for i, part := range strings.Split(token.Value, "\n") {
			if i > 0 {
				row++
				col = x
			}
			if part == "" {
				continue
			}
			c.Text(col, row, ts, part)
			col += len([]rune(part))
		}
	}
	return nil
}

// tokenStyle converts a chroma style entry into a lipgloss style.
func tokenStyle(entry chroma.StyleEntry) lipgloss.Style {
	s := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	return s
}
