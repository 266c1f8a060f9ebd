// Package present implements the presentation controller: an ordered,
// append-only list of slide-drawing callbacks, a cursor into that list, and
// keyboard-driven navigation over a window/canvas pair.
//
// Slides carry a clear flag. A slide's visible state is the replay of every
// callback from the nearest clear point at or before it through the slide
// itself, which lets slides build incrementally on prior drawing. Callbacks
// must be repeatable: navigation re-runs them from scratch.
package present

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/attribute"

	"slidedeck/internal/canvas"
	"slidedeck/internal/events"
	"slidedeck/internal/telemetry"
)

// DrawFunc draws a slide onto the slide canvas. It must succeed repeatably;
// the controller re-invokes it whenever the slide is replayed.
type DrawFunc func(*canvas.Canvas) error

// Slide is a registered drawing callback plus its clear policy.
type Slide struct {
	Draw  DrawFunc
	Clear bool
}

// Options configures a presentation. The zero value gives an unframed,
// zero-sized window; the UI layer sizes it on the first WindowSizeMsg.
type Options struct {
	Title         string
	Width, Height int
	Padding       int
	Frame         *lipgloss.Style  // nil selects canvas.DefaultFrame
	Logger        *slog.Logger     // nil selects slog.Default
	Tracer        *telemetry.Tracer // nil disables spans
}

// Presentation owns the static background window and its nested slide
// canvas, created once at construction. The slide list is append-only; the
// cursor is -1 until the first slide registers and stays within
// [0, SlideCount-1] afterwards.
type Presentation struct {
	title   string
	win     *canvas.Window
	slides  []Slide
	current int
	log     *slog.Logger
	tracer  *telemetry.Tracer
	ctx     context.Context
}

// New constructs the window pair and subscribes the navigation key handler on
// the window stream at events.PriorityNavigation, below the window→canvas
// forwarder, so slide-local handlers observe a key before navigation mutates
// the deck.
func New(opts Options) *Presentation {
	frame := canvas.DefaultFrame()
	if opts.Frame != nil {
		frame = *opts.Frame
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	p := &Presentation{
		title: opts.Title,
		win: canvas.NewWindow(canvas.Config{
			Width:   opts.Width,
			Height:  opts.Height,
			Padding: opts.Padding,
			Frame:   frame,
		}),
		current: -1,
		log:     logger,
		tracer:  opts.Tracer,
		ctx:     context.Background(),
	}
	p.win.Events().Subscribe(events.PriorityNavigation, p.handleKey)
	return p
}

// Title returns the deck title.
func (p *Presentation) Title() string {
	return p.title
}

// Window returns the static background window.
func (p *Presentation) Window() *canvas.Window {
	return p.win
}

// Canvas returns the mutable slide canvas nested in the window.
func (p *Presentation) Canvas() *canvas.Canvas {
	return p.win.Content()
}

// Events returns the window's event stream. Keys published here reach slide
// handlers first and navigation last.
func (p *Presentation) Events() *events.Stream {
	return p.win.Events()
}

// CurrentIndex returns the cursor, or -1 while the deck is empty.
func (p *Presentation) CurrentIndex() int {
	return p.current
}

// SlideCount returns the number of registered slides.
func (p *Presentation) SlideCount() int {
	return len(p.slides)
}

// At forwards to the slide canvas's element list.
func (p *Presentation) At(i int) *canvas.Element {
	return p.win.Content().At(i)
}

// Clear clears only the slide canvas, never the background window.
func (p *Presentation) Clear() {
	p.win.Content().Clear()
}

// View renders the background window, which visually contains the slide
// canvas.
func (p *Presentation) View() string {
	return p.win.Render()
}

// SetSize resizes the window and replays the current slide so repeatable
// callbacks can adapt to the new canvas dimensions.
func (p *Presentation) SetSize(width, height int) {
	p.win.SetSize(width, height)
	if p.current >= 0 {
		p.replayTo(p.current)
	}
}

// AddSlide validates and registers a drawing callback. The canvas is cleared
// when clear is set, fn runs immediately against the slide canvas so drawing
// errors surface at authoring time, and only on success is the slide appended
// and the cursor moved to it. On failure the error is logged and returned and
// the slide list is untouched.
//
// The first registered slide is always a clear point regardless of the flag
// passed: replay scans backward for a clear point and needs index 0 as its
// anchor.
func (p *Presentation) AddSlide(fn DrawFunc, clear bool) error {
	if len(p.slides) == 0 {
		clear = true
	}
	idx := len(p.slides)
	if clear {
		p.win.Content().Clear()
	}
	_, span := p.tracer.Start(p.ctx, "slide.draw",
		attribute.Int("slide.index", idx),
		attribute.Bool("slide.clear", clear),
	)
	err := invoke(fn, p.win.Content())
	span.End()
	if err != nil {
		p.log.Error("slide rejected: callback failed during registration",
			"index", idx,
			"error", err,
			"hint", "slide callbacks must have signature func(*canvas.Canvas) error and draw repeatably",
		)
		// The failed draw may have left partial content; restore the state of
		// the current slide so the canvas keeps matching the cursor.
		if p.current >= 0 {
			p.replayTo(p.current)
		} else {
			p.win.Content().Clear()
		}
		return fmt.Errorf("register slide %d: %w", idx, err)
	}
	p.slides = append(p.slides, Slide{Draw: fn, Clear: clear})
	p.current = idx
	return nil
}

// SetSlideIndex jumps to slide i. Requests that are out of range or equal to
// the current index are silently ignored.
func (p *Presentation) SetSlideIndex(i int) {
	if i == p.current || i < 0 || i >= len(p.slides) {
		return
	}
	_, span := p.tracer.Start(p.ctx, "slide.navigate",
		attribute.Int("slide.from", p.current),
		attribute.Int("slide.to", i),
	)
	defer span.End()
	p.replayTo(i)
}

// replayTo clears the canvas once and re-runs callbacks from the nearest
// clear point at or before i through i, then lands the cursor on i. Slide 0
// is always a clear point, so the scan always terminates on one.
func (p *Presentation) replayTo(i int) {
	j := i
	for j > 0 && !p.slides[j].Clear {
		j--
	}
	c := p.win.Content()
	c.Clear()
	for k := j; k <= i; k++ {
		if err := invoke(p.slides[k].Draw, c); err != nil {
			// Validated at registration, so a failure here means the callback
			// is not repeatable. Stop replaying; the cursor still moves.
			p.log.Error("slide callback failed during replay",
				"index", k,
				"target", i,
				"error", err,
			)
			break
		}
	}
	p.current = i
}

// NextSlide advances one slide. Moving forward by one is always adjacent, so
// no backward scan is needed: clear only if the target is a clear point, then
// draw just the target. No-op at the last slide.
func (p *Presentation) NextSlide() {
	i := p.current + 1
	if i >= len(p.slides) {
		return
	}
	_, span := p.tracer.Start(p.ctx, "slide.navigate",
		attribute.Int("slide.from", p.current),
		attribute.Int("slide.to", i),
	)
	defer span.End()
	c := p.win.Content()
	if p.slides[i].Clear {
		c.Clear()
	}
	if err := invoke(p.slides[i].Draw, c); err != nil {
		p.log.Error("slide callback failed during replay",
			"index", i,
			"target", i,
			"error", err,
		)
	}
	p.current = i
}

// PrevSlide steps back one slide. No-op at slide 0 or on an empty deck.
func (p *Presentation) PrevSlide() {
	if p.current <= 0 {
		return
	}
	p.SetSlideIndex(p.current - 1)
}

// Reset jumps back to the first slide. Idempotent.
func (p *Presentation) Reset() {
	p.SetSlideIndex(0)
}

// handleKey maps key releases to navigation. Bindings are fixed:
// right/enter advance, left steps back, home resets.
func (p *Presentation) handleKey(ev events.Event) {
	k, ok := ev.(events.KeyEvent)
	if !ok || k.Action != events.KeyRelease {
		return
	}
	switch k.Key {
	case "right", "enter":
		p.NextSlide()
	case "left":
		p.PrevSlide()
	case "home":
		p.Reset()
	}
}

// invoke runs fn against c, converting panics into errors so a misbehaving
// callback cannot take down the event loop during registration or replay.
func invoke(fn DrawFunc, c *canvas.Canvas) (err error) {
	if fn == nil {
		return errors.New("nil slide callback")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("slide callback panicked: %v", r)
		}
	}()
	return fn(c)
}
