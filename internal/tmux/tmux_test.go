package tmux

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenClosePane(t *testing.T) {
	if !Inside() {
		t.Skip("Skipping tmux test: not running inside tmux")
	}
	notes := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(notes, []byte("# notes\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	before, err := PaneCount()
	if err != nil {
		t.Fatalf("PaneCount: %v", err)
	}

	paneID, err := OpenNotesPane(notes)
	if err != nil {
		t.Fatalf("OpenNotesPane: %v", err)
	}
	if paneID == "" {
		t.Fatal("OpenNotesPane returned empty pane ID")
	}

	after, err := PaneCount()
	if err != nil {
		t.Fatalf("PaneCount: %v", err)
	}
	if after != before+1 {
		t.Errorf("pane count = %d, want %d", after, before+1)
	}

	if err := ClosePane(paneID); err != nil {
		t.Fatalf("ClosePane: %v", err)
	}
}

func TestClosePane_UnknownID(t *testing.T) {
	if !Inside() {
		t.Skip("Skipping tmux test: not running inside tmux")
	}
	if err := ClosePane("%99999"); err == nil {
		t.Error("expected error for unknown pane ID")
	}
}
