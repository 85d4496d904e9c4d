package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultLogFile = "ace-c.log"

var (
	traceMu      sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	sessionID    = uuid.NewString()
)

// Error appends err to the shared log file. Nothing is written to the
// terminal since the UI owns it while a session runs.
func Error(err error) {
	if err == nil {
		return
	}

	f, ferr := os.OpenFile(currentPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", ferr)
		return
	}
	defer f.Close()

	logger := log.New(f, "", log.LstdFlags)
	logger.Printf("[%s] %v", sessionID, err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// TraceEnabled reports whether Trace currently writes entries.
func TraceEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceEnabled
}

// SessionID identifies this process in every log and trace entry.
func SessionID() string {
	return sessionID
}

type traceEntry struct {
	Time    time.Time   `json:"time"`
	Session string      `json:"session"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}

	entry := traceEntry{
		Time:    time.Now().UTC(),
		Session: sessionID,
		Event:   event,
		Payload: payload,
	}

	f, err := os.OpenFile(currentPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
		return
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Path returns the active log destination.
func Path() string {
	return currentPath()
}

func currentPath() string {
	traceMu.Lock()
	defer traceMu.Unlock()
	return logPath
}
