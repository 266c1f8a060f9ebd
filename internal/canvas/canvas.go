// Package canvas provides the drawable surfaces slides render into: a
// cell-grid Canvas of styled text elements, and a framed Window that hosts a
// nested Canvas with a forwarded copy of its event stream.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"slidedeck/internal/events"
)

// Element is a styled text run placed at a cell coordinate. Multi-line text
// continues on subsequent rows at the same x.
type Element struct {
	X, Y  int
	Style lipgloss.Style
	Text  string
}

// Canvas is a fixed-size cell grid. Elements are drawn in insertion order, so
// later elements overdraw earlier ones. Each canvas owns an event stream;
// Clear drops both the elements and any handlers subscribed to that stream.
type Canvas struct {
	width, height int
	elements      []*Element
	stream        *events.Stream
}

// New returns an empty canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{width: width, height: height, stream: events.NewStream()}
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// SetSize resizes the canvas. Elements keep their coordinates; anything
// outside the new bounds is clipped at render time.
func (c *Canvas) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width, c.height = width, height
}

// Events returns the canvas's event stream.
func (c *Canvas) Events() *events.Stream {
	return c.stream
}

// Add appends el and returns a pointer usable for later mutation.
func (c *Canvas) Add(el Element) *Element {
	p := &el
	c.elements = append(c.elements, p)
	return p
}

// Text places a styled text run at (x, y).
func (c *Canvas) Text(x, y int, style lipgloss.Style, text string) *Element {
	return c.Add(Element{X: x, Y: y, Style: style, Text: text})
}

// At returns the i-th element, or nil when out of range.
func (c *Canvas) At(i int) *Element {
	if i < 0 || i >= len(c.elements) {
		return nil
	}
	return c.elements[i]
}

// Len returns the number of elements.
func (c *Canvas) Len() int {
	return len(c.elements)
}

// Clear removes all elements and resets the canvas's event stream. Handlers
// attached while a slide was drawing are dropped along with the slide's
// content; forwarders subscribed on a parent stream are untouched.
func (c *Canvas) Clear() {
	c.elements = nil
	c.stream.Reset()
}

type cell struct {
	r     rune
	style *lipgloss.Style
}

// Render paints the grid and returns it as height lines joined by newlines.
// Runs of cells sharing a style are rendered together.
func (c *Canvas) Render() string {
	if c.width == 0 || c.height == 0 {
		return ""
	}
	grid := make([][]cell, c.height)
	for y := range grid {
		grid[y] = make([]cell, c.width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}
	for _, el := range c.elements {
		for dy, line := range strings.Split(el.Text, "\n") {
			y := el.Y + dy
			if y < 0 || y >= c.height {
				continue
			}
			x := el.X
			for _, r := range line {
				if x >= 0 && x < c.width {
					grid[y][x] = cell{r: r, style: &el.Style}
				}
				x++
			}
		}
	}

	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		x := 0
		for x < c.width {
			style := row[x].style
			start := x
			for x < c.width && row[x].style == style {
				x++
			}
			run := make([]rune, 0, x-start)
			for i := start; i < x; i++ {
				run = append(run, row[i].r)
			}
			if style == nil {
				b.WriteString(string(run))
			} else {
				b.WriteString(style.Render(string(run)))
			}
		}
	}
	return b.String()
}
