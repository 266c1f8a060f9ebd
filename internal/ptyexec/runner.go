// Package ptyexec runs commands under a pseudo-terminal and captures their
// output for command slides. Running in a pty keeps color output and
// terminal-aware formatting that a plain pipe would lose.
package ptyexec

import (
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/creack/pty"
)

// Size is the pty's dimensions in character cells.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner spawns a command in a pty. Implementations can be swapped for a
// stub in tests.
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadCloser, error)
}

// CreackPTY implements Runner using github.com/creack/pty.
type CreackPTY struct{}

var _ Runner = (*CreackPTY)(nil)

// Start spawns cmd in a pty with the given size. The returned reader yields
// the command's interleaved stdout/stderr; closing it releases the pty.
func (c *CreackPTY) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadCloser, error) {
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
	if err != nil {
		return nil, err
	}
	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			f.Close()
		}()
	}
	return f, nil
}

// Capture runs the command to completion and returns everything it wrote.
// The pty master returns an error once the child exits; output read up to
// that point is kept and the exit-side read error is not reported.
func Capture(ctx context.Context, r Runner, size Size, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := r.Start(ctx, cmd, size)
	if err != nil {
		return "", err
	}
	defer out.Close()

	var b strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := out.Read(buf)
		b.Write(buf[:n])
		if err != nil {
			break
		}
	}
	_ = cmd.Wait()
	return b.String(), nil
}

// Stub is a Runner for tests: Start ignores the command and returns canned
// output.
type Stub struct {
	Output string
	Err    error
}

var _ Runner = (*Stub)(nil)

// Start implements Runner with the stub's canned output.
func (s *Stub) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadCloser, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return io.NopCloser(strings.NewReader(s.Output)), nil
}
