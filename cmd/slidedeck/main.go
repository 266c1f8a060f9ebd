package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"slidedeck/internal/canvas"
	"slidedeck/internal/content"
	"slidedeck/internal/present"
	"slidedeck/internal/ptyexec"
	"slidedeck/internal/telemetry"
	"slidedeck/internal/tmux"
	"slidedeck/internal/ui"
)

func main() {
	notes := flag.String("notes", "", "notes file to show in an adjacent tmux pane")
	allowExec := flag.Bool("exec", false, "include the live-command slide")
	flag.Parse()

	ctx := context.Background()
	tracer, err := telemetry.NewFromEnv(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: %v\n", err)
		os.Exit(1)
	}
	defer tracer.Shutdown(ctx)

	p := present.New(present.Options{
		Title:   "slidedeck",
		Padding: 1,
		Tracer:  tracer,
	})
	if err := buildDeck(p, *allowExec); err != nil {
		fmt.Fprintf(os.Stderr, "building deck: %v\n", err)
		os.Exit(1)
	}
	p.Reset()

	if *notes != "" {
		if !tmux.Inside() {
			fmt.Fprintln(os.Stderr, "-notes needs tmux (e.g. `tmux new -s talk` then rerun)")
			os.Exit(1)
		}
		paneID, err := tmux.OpenNotesPane(*notes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "notes pane: %v\n", err)
		} else {
			defer tmux.ClosePane(paneID)
		}
	}

	prog := tea.NewProgram(ui.NewModel(p), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

const sampleSource = `func (p *Presentation) NextSlide() {
	i := p.current + 1
	if i >= len(p.slides) {
		return
	}
	if p.slides[i].Clear {
		p.win.Content().Clear()
	}
	// ...
}`

// buildDeck registers the demo slides. Slides 2-4 build on slide 1
// incrementally (clear=false), so stepping back and forth replays them from
// the clear point.
func buildDeck(p *present.Presentation, allowExec bool) error {
	if err := p.AddSlide(func(c *canvas.Canvas) error {
		_, h := c.Size()
		content.Title(c, h/3, "slidedeck")
		content.Subtitle(c, h/3+2, "terminal presentations from Go closures")
		return nil
	}, true); err != nil {
		return err
	}

	if err := p.AddSlide(func(c *canvas.Canvas) error {
		content.Title(c, 1, "Slides are closures")
		return nil
	}, true); err != nil {
		return err
	}
	points := []string{
		"each slide draws onto a reusable canvas",
		"non-clear slides accumulate on the previous ones",
		"jumping replays from the nearest clear point",
	}
	for i, point := range points {
		i, point := i, point
		if err := p.AddSlide(func(c *canvas.Canvas) error {
			content.Bullet(c, 2, 3+i, point)
			return nil
		}, false); err != nil {
			return err
		}
	}

	if err := p.AddSlide(func(c *canvas.Canvas) error {
		content.Title(c, 1, "Stepping forward")
		return content.Code(c, 2, 3, sampleSource, "go")
	}, true); err != nil {
		return err
	}

	if allowExec {
		draw := content.Command(&ptyexec.CreackPTY{}, "uptime")
		if err := p.AddSlide(func(c *canvas.Canvas) error {
			content.Title(c, 1, "Live output")
			return draw(c)
		}, true); err != nil {
			return err
		}
	}
	return nil
}
