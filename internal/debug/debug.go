package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable that enables logging at startup.
const EnvVar = "BOREALIS_DEBUG"

var (
	mu      sync.Mutex
	logger  *slog.Logger
	logFile *os.File
	loaded  bool
)

// Init starts appending debug records to the file at path.
// An already open log file is closed first.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	loaded = true
	return initLocked(path)
}

func initLocked(path string) error {
	closeLocked()

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	logFile = f
	logger = newLogger(f)
	return nil
}

// SetOutput routes debug records to w. A nil writer disables logging.
// Used by tests and by hosts that already own a log sink.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	loaded = true
	closeLocked()
	if w != nil {
		logger = newLogger(w)
	}
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Enabled reports whether records are currently written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	return logger != nil
}

// Log writes a formatted debug record.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	if logger == nil {
		return
	}
	logger.Log(context.Background(), slog.LevelDebug, fmt.Sprintf(format, args...))
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}

// loadLocked consults the environment once. Caller must hold mu.
func loadLocked() {
	if loaded {
		return
	}
	loaded = true
	if path := os.Getenv(EnvVar); path != "" {
		_ = initLocked(path)
	}
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
