package state

import (
	"testing"

	"github.com/atomicstack/ace-config/internal/menu"
)

func newTestLevel(labels ...string) *Level {
	return NewLevel("Test", menu.Plain(labels...))
}

func TestNewLevelStartsAtFirstRow(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	opt, ok := l.Current()
	if !ok || opt.Label != "a" {
		t.Fatalf("unexpected current option %#v (ok=%v)", opt, ok)
	}
}

func TestNewLevelCopiesItems(t *testing.T) {
	items := menu.Plain("a", "b")
	l := NewLevel("Test", items)
	items[0].Label = "changed"
	if l.Items[0].Label != "a" {
		t.Fatalf("expected level to own its options, got %q", l.Items[0].Label)
	}
}

func TestMoveCursorDownWrapsAround(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d")
	for i := 0; i < l.Len(); i++ {
		l.MoveCursorDown()
	}
	if l.Cursor != 0 {
		t.Fatalf("expected %d downs to return to 0, got %d", l.Len(), l.Cursor)
	}
	l.Cursor = 3
	if !l.MoveCursorDown() || l.Cursor != 0 {
		t.Fatalf("expected wrap from last row to 0, got %d", l.Cursor)
	}
}

func TestMoveCursorUpWrapsAround(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorUp() {
		t.Fatalf("expected movement when wrapping up")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected up from 0 to land on 2, got %d", l.Cursor)
	}
	l.MoveCursorUp()
	if l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
}

func TestMoveCursorSingleOption(t *testing.T) {
	l := newTestLevel("only")
	if l.MoveCursorDown() || l.MoveCursorUp() {
		t.Fatalf("expected no movement with a single option")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
}

func TestMoveCursorHome(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when items exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestLevel()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if l.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at end")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	if !l.MoveCursorPageDown(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page down, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) || l.Cursor != 4 {
		t.Fatalf("expected cursor 4 after second page down, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(10) || l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}
