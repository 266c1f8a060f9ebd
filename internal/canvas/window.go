package canvas

import (
	"github.com/charmbracelet/lipgloss"

	"slidedeck/internal/events"
)

// Config holds window construction options, forwarded verbatim from the
// presentation constructor.
type Config struct {
	Width, Height int
	Padding       int
	Frame         lipgloss.Style // border + background styling; zero value means no frame
}

// DefaultFrame returns the standard window frame: rounded border, no padding
// of its own (padding is managed separately as an observable).
func DefaultFrame() lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
}

// Window is the static background canvas. It is created once, holds the frame
// styling, and hosts a nested content canvas whose event stream receives a
// forwarded copy of the window's events. Clearing the content never disturbs
// subscriptions on the window's own stream.
type Window struct {
	width, height int
	padding       *Value[int]
	frame         lipgloss.Style
	stream        *events.Stream
	content       *Canvas
}

// NewWindow constructs the window and its nested content canvas, and wires
// window→content event forwarding at events.PriorityForward.
func NewWindow(cfg Config) *Window {
	w := &Window{
		width:   cfg.Width,
		height:  cfg.Height,
		padding: NewValue(cfg.Padding),
		frame:   cfg.Frame,
		stream:  events.NewStream(),
		content: New(0, 0),
	}
	w.padding.OnChange(func(int) { w.layout() })
	w.layout()
	events.Forward(w.stream, w.content.Events(), events.PriorityForward)
	return w
}

// Events returns the window's own event stream. Navigation handlers subscribe
// here so that clearing the content canvas cannot drop them.
func (w *Window) Events() *events.Stream {
	return w.stream
}

// Content returns the nested mutable canvas.
func (w *Window) Content() *Canvas {
	return w.content
}

// Size returns the outer window dimensions.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// SetSize resizes the window and relays out the content canvas.
func (w *Window) SetSize(width, height int) {
	w.width, w.height = width, height
	w.layout()
}

// Padding returns the current padding.
func (w *Window) Padding() int {
	return w.padding.Get()
}

// SetPadding updates the padding observable; the content canvas is resized
// immediately and the change shows on the next render.
func (w *Window) SetPadding(p int) {
	w.padding.Set(p)
}

func (w *Window) frameStyle() lipgloss.Style {
	return w.frame.Padding(w.padding.Get())
}

// layout derives the content canvas size from the outer size minus the frame
// and padding.
func (w *Window) layout() {
	fs := w.frameStyle()
	w.content.SetSize(
		w.width-fs.GetHorizontalFrameSize(),
		w.height-fs.GetVerticalFrameSize(),
	)
}

// Render paints the content canvas inside the frame.
func (w *Window) Render() string {
	return w.frameStyle().Render(w.content.Render())
}
