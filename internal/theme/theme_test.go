package theme

import (
	"testing"

	"github.com/atomicstack/ace-config/internal/menu"
)

func TestPrefixMarksWarnings(t *testing.T) {
	if got := Prefix(menu.EmphasisWarning); got != WarningGlyph+" " {
		t.Fatalf("expected warning glyph prefix, got %q", got)
	}
	for _, e := range []menu.Emphasis{menu.EmphasisNormal, menu.EmphasisConfirm, menu.EmphasisRed} {
		if got := Prefix(e); got != "  " {
			t.Fatalf("expected blank prefix for %s, got %q", e, got)
		}
	}
}

func TestForFallsBackToNormal(t *testing.T) {
	s := Default()
	if s.For(menu.Emphasis(42)).GetForeground() != s.For(menu.EmphasisNormal).GetForeground() {
		t.Fatalf("expected unknown emphasis to render as normal")
	}
	if !s.For(menu.EmphasisWarning).GetBold() {
		t.Fatalf("expected warning emphasis to be bold")
	}
}

func TestHeaderIsQuieterThanPrompt(t *testing.T) {
	s := Default()
	if s.Header.GetBold() || !s.Prompt.GetBold() {
		t.Fatalf("expected bold prompt under a plain header")
	}
}
