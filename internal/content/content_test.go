package content

import (
	"errors"
	"strings"
	"testing"

	"slidedeck/internal/canvas"
	"slidedeck/internal/ptyexec"
)

func TestTitle_Centered(t *testing.T) {
	c := canvas.New(10, 2)
	Title(c, 0, "ab")
	el := c.At(0)
	if el == nil {
		t.Fatal("no element drawn")
	}
	if el.X != 4 || el.Y != 0 {
		t.Errorf("title at (%d,%d), want (4,0)", el.X, el.Y)
	}

	// Titles wider than the canvas pin to column 0 instead of going negative.
	Title(c, 1, strings.Repeat("x", 20))
	if el := c.At(1); el.X != 0 {
		t.Errorf("oversized title at x=%d, want 0", el.X)
	}
}

func TestBullets_ConsecutiveRows(t *testing.T) {
	c := canvas.New(20, 5)
	Bullets(c, 2, 1, "one", "two", "three")
	if c.Len() != 3 {
		t.Fatalf("elements = %d, want 3", c.Len())
	}
	for i := 0; i < 3; i++ {
		el := c.At(i)
		if el.X != 2 || el.Y != 1+i {
			t.Errorf("bullet %d at (%d,%d), want (2,%d)", i, el.X, el.Y, 1+i)
		}
		if !strings.HasPrefix(el.Text, "• ") {
			t.Errorf("bullet %d text = %q, want bullet prefix", i, el.Text)
		}
	}
}

func TestCode_TokensLandOnRows(t *testing.T) {
	c := canvas.New(60, 10)
	src := "package main\n\nfunc main() {}\n"
	if err := Code(c, 0, 0, src, "go"); err != nil {
		t.Fatalf("Code: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("no elements drawn")
	}

	// Reassemble per-row text from the elements and compare with the source.
	rows := map[int]map[int]string{}
	for i := 0; i < c.Len(); i++ {
		el := c.At(i)
		if rows[el.Y] == nil {
			rows[el.Y] = map[int]string{}
		}
		rows[el.Y][el.X] = el.Text
	}
	line0 := reassemble(rows[0])
	if line0 != "package main" {
		t.Errorf("row 0 = %q, want %q", line0, "package main")
	}
	line2 := reassemble(rows[2])
	if line2 != "func main() {}" {
		t.Errorf("row 2 = %q, want %q", line2, "func main() {}")
	}
}

func TestCode_UnknownLanguageFallsBack(t *testing.T) {
	c := canvas.New(40, 4)
	if err := Code(c, 0, 0, "just words", "no-such-lang"); err != nil {
		t.Fatalf("Code: %v", err)
	}
	if c.Len() == 0 {
		t.Error("fallback lexer should still draw the text")
	}
}

func reassemble(cols map[int]string) string {
	var maxEnd int
	for x, s := range cols {
		if end := x + len([]rune(s)); end > maxEnd {
			maxEnd = end
		}
	}
	row := make([]rune, maxEnd)
	for i := range row {
		row[i] = ' '
	}
	for x, s := range cols {
		copy(row[x:], []rune(s))
	}
	return strings.TrimRight(string(row), " ")
}

func TestCommand_DrawsCapturedOutput(t *testing.T) {
	c := canvas.New(40, 10)
	stub := &ptyexec.Stub{Output: "hello\x1b[31m world\x1b[0m\r\nsecond\r\n"}
	draw := Command(stub, "echo", "hi")
	if err := draw(c); err != nil {
		t.Fatalf("draw: %v", err)
	}

	got := c.Render()
	if !strings.Contains(got, "$ echo hi") {
		t.Errorf("missing invocation header in %q", got)
	}
	if !strings.Contains(got, "hello world") {
		t.Errorf("ANSI escapes should be stripped, got %q", got)
	}
	if !strings.Contains(got, "second") {
		t.Errorf("missing second line in %q", got)
	}
}

func TestCommand_RunnerErrorPropagates(t *testing.T) {
	c := canvas.New(10, 2)
	stub := &ptyexec.Stub{Err: errors.New("spawn failed")}
	if err := Command(stub, "boom")(c); err == nil {
		t.Error("expected error from failing runner")
	}
}
