package app

import (
	"context"
	"fmt"
	"io"

	"github.com/atomicstack/ace-config/internal/adb"
	"github.com/atomicstack/ace-config/internal/menu"
	"github.com/atomicstack/ace-config/internal/session"
	"github.com/atomicstack/ace-config/internal/slots"
	"github.com/atomicstack/ace-config/internal/ui"
	"github.com/spf13/afero"
)

// Config describes user-provided application options.
type Config struct {
	StorageDir string
	ADBCommand string
	RemotePath string
	AltScreen  bool

	// Fs backs slot storage; nil uses the OS filesystem.
	Fs afero.Fs
	// Input and Output override the terminal streams.
	Input  io.Reader
	Output io.Writer
}

// Run wires storage, the adb transport and the terminal, then drives the
// session until the operator quits.
func Run(ctx context.Context, cfg Config) error {
	client, err := adb.NewClient(cfg.ADBCommand)
	if err != nil {
		return fmt.Errorf("adb: %w", err)
	}
	registry := slots.NewRegistry(slots.NewFileStore(cfg.Fs, cfg.StorageDir))
	opts := ui.Options{AltScreen: cfg.AltScreen, Input: cfg.Input, Output: cfg.Output}
	return ui.Run(ctx, opts, func(ctx context.Context, p menu.Prompter) error {
		return session.New(p, registry, client, session.WithRemotePath(cfg.RemotePath)).Run(ctx)
	})
}
