package content

import (
	"context"
	"regexp"
	"strings"

	"slidedeck/internal/canvas"
	"slidedeck/internal/present"
	"slidedeck/internal/ptyexec"
)

// ansiEscapes matches CSI and OSC sequences in pty output; the canvas styles
// its own cells, so the command's escape codes are stripped.
var ansiEscapes = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07]*(\x07|\x1b\\)`)

// Command returns a slide callback that runs the command in a pty sized to
// the slide canvas and draws its output line by line under a header showing
// the invocation. The command runs on every replay of the slide; commands
// used on slides should therefore be idempotent.
func Command(runner ptyexec.Runner, name string, args ...string) present.DrawFunc {
	return func(c *canvas.Canvas) error {
		w, h := c.Size()
		size := ptyexec.Size{Rows: uint16(max(h, 1)), Cols: uint16(max(w, 1))}
		out, err := ptyexec.Capture(context.Background(), runner, size, name, args...)
		if err != nil {
			return err
		}

		c.Text(0, 0, Styles.Subtitle, "$ "+strings.Join(append([]string{name}, args...), " "))
		row := 2
		for _, line := range strings.Split(cleanOutput(out), "\n") {
			if row >= h {
				break
			}
			c.Text(0, row, Styles.Output, line)
			row++
		}
		return nil
	}
}

// cleanOutput strips ANSI escapes and carriage returns and trims trailing
// blank lines.
func cleanOutput(s string) string {
	s = ansiEscapes.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimRight(s, "\n")
}
