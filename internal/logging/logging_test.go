package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "ace-c.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestConfigureCreatesDirectory(t *testing.T) {
	path := useTempLog(t)
	if Path() != path {
		t.Fatalf("expected log path %q, got %q", path, Path())
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("expected log directory to exist: %v", err)
	}
	Configure("  ")
	if Path() != defaultLogFile {
		t.Fatalf("expected blank path to reset to default, got %q", Path())
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(false)
	Trace("menu.cursor", map[string]interface{}{"cursor": 1})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file when tracing is disabled, got err=%v", err)
	}
}

func TestTraceWritesJSONWithSession(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(true)
	Trace("slot.save", map[string]interface{}{"slot": 3})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry traceEntry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("decode trace entry: %v", err)
	}
	if entry.Event != "slot.save" {
		t.Fatalf("unexpected event %q", entry.Event)
	}
	if entry.Session != SessionID() || entry.Session == "" {
		t.Fatalf("expected session id %q, got %q", SessionID(), entry.Session)
	}
}

func TestErrorAppendsLine(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("push failed"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "push failed") {
		t.Fatalf("expected error text in log, got %q", data)
	}
	if strings.Count(string(data), "\n") != 1 {
		t.Fatalf("expected a single log line, got %q", data)
	}
}
