// Package tmux opens a speaker-notes pane next to the presentation when the
// binary runs inside tmux. Panes are driven through the tmux CLI; Inside
// reports whether that is available at all.
package tmux

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Inside reports whether the process runs inside a tmux session.
func Inside() bool {
	return os.Getenv("TMUX") != ""
}

// OpenNotesPane splits the current window vertically and shows the notes
// file through a pager in the new pane, keeping focus on the presentation.
// Returns the new pane ID (e.g. %4).
func OpenNotesPane(notesFile string) (paneID string, err error) {
	out, err := run("split-window", "-h", "-l", "30%", "-P", "-F", "#{pane_id}", "less", "-S", notesFile)
	if err != nil {
		return "", err
	}
	paneID = strings.TrimSpace(out)
	if _, err := run("select-pane", "-L"); err != nil {
		// The notes pane exists; report the focus problem alongside its ID
		// so the caller can still close it.
		return paneID, err
	}
	return paneID, nil
}

// ClosePane kills the pane with the given ID. Closing a pane that is already
// gone returns an error from tmux; callers tearing down may ignore it.
func ClosePane(paneID string) error {
	_, err := run("kill-pane", "-t", paneID)
	return err
}

// PaneCount returns the number of panes in the current window.
func PaneCount() (int, error) {
	out, err := run("display-message", "-p", "#{window_panes}")
	if err != nil {
		return 0, err
	}
	var n int
	if _, err := fmt.Sscanf(strings.TrimSpace(out), "%d", &n); err != nil {
		return 0, fmt.Errorf("parse pane count: %w", err)
	}
	return n, nil
}

func run(args ...string) (string, error) {
	cmd := exec.Command("tmux", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tmux %s: %w: %s", args[0], err, strings.TrimSpace(out.String()))
	}
	return out.String(), nil
}
