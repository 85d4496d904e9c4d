package routine

import (
	"context"
	"errors"
	"testing"

	"github.com/atomicstack/ace-config/internal/menu"
	"github.com/atomicstack/ace-config/internal/testutil"
)

func TestBuilderDoneImmediately(t *testing.T) {
	script := testutil.NewScript("BLUE", "RIGHT", LabelDone)
	b := NewBuilder(script)
	cfg, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := Configuration{TeamColor: Blue, StartPosition: Right}
	if !cfg.Equal(want) {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
	if b.Phase() != PhaseDone {
		t.Fatalf("expected done phase, got %v", b.Phase())
	}
	if cfg.Actions == nil {
		t.Fatalf("expected empty, non-nil sequence")
	}
}

func TestBuilderAccumulatesUntilNo(t *testing.T) {
	script := testutil.NewScript(
		"RED", "LEFT",
		"BACKDROP_SCORE", menu.LabelYes,
		"DELAY_1S", menu.LabelYes,
		"PARK_CENTER", menu.LabelNo,
	)
	cfg, err := NewBuilder(script).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := Sequence{BackdropScore, Delay1s, ParkCenter}
	if !cfg.Equal(Configuration{Actions: want, TeamColor: Red, StartPosition: Left}) {
		t.Fatalf("unexpected configuration %+v", cfg)
	}
	if script.Remaining() != 0 {
		t.Fatalf("expected all picks consumed, %d left", script.Remaining())
	}

	menus := script.PromptsTitled(promptAction)
	if len(menus) != 3 {
		t.Fatalf("expected 3 action menus, got %d", len(menus))
	}
	second := menus[1].Options
	if second[1].Label != "PARK_CENTER" || second[1].Emphasis != menu.EmphasisWarning {
		t.Fatalf("expected PARK_CENTER warned after BACKDROP_SCORE, got %#v", second[1])
	}
	third := menus[2].Options
	for _, opt := range third[:7] {
		if opt.Emphasis != menu.EmphasisNormal {
			t.Fatalf("expected no warnings after a delay, got %#v", opt)
		}
	}
}

func TestBuilderDoneAfterActions(t *testing.T) {
	script := testutil.NewScript("RED", "LEFT", "PARK_LEFT", menu.LabelYes, LabelDone)
	cfg, err := NewBuilder(script).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(cfg.Actions) != 1 || cfg.Actions[0] != ParkLeft {
		t.Fatalf("unexpected actions %v", cfg.Actions)
	}
	menus := script.PromptsTitled(promptAction)
	for _, opt := range menus[1].Options[:7] {
		if opt.Emphasis != menu.EmphasisWarning {
			t.Fatalf("expected every action warned after parking, got %#v", opt)
		}
	}
}

func TestBuilderPropagatesPromptErrors(t *testing.T) {
	script := testutil.NewScript("RED")
	_, err := NewBuilder(script).Build(context.Background())
	if !errors.Is(err, testutil.ErrScriptExhausted) {
		t.Fatalf("expected exhausted script error, got %v", err)
	}
}
