package app

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/atomicstack/ace-config/internal/adb"
	"github.com/atomicstack/ace-config/internal/ui"
	"github.com/spf13/afero"
)

func TestRunRejectsEmptyADBCommand(t *testing.T) {
	err := Run(context.Background(), Config{ADBCommand: " ", Fs: afero.NewMemMapFs()})
	if !errors.Is(err, adb.ErrNoCommand) {
		t.Fatalf("expected ErrNoCommand, got %v", err)
	}
}

func TestRunRequiresTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	err = Run(context.Background(), Config{ADBCommand: "adb", StorageDir: ".", Fs: afero.NewMemMapFs(), Input: r})
	if !errors.Is(err, ui.ErrNoTerminal) {
		t.Fatalf("expected ErrNoTerminal, got %v", err)
	}
}
