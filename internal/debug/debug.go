package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "NODEUI_DEBUG"

var (
	logger *zap.Logger
	mu     sync.Mutex
)

// Init routes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	l, err := NewFileLogger(path)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// NewFileLogger builds a development logger that appends to path.
// If path is empty, uses "debug.log" in the current directory.
func NewFileLogger(path string) (*zap.Logger, error) {
	if path == "" {
		path = "debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return l, nil
}

// Logger returns the debug logger. On first use it opens the file named by
// NODEUI_DEBUG, falling back to a no-op logger when the variable is unset
// or the file cannot be opened.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		path := os.Getenv(EnvVar)
		if path == "" || initLocked(path) != nil {
			logger = zap.NewNop()
		}
	}
	return logger
}

// Close flushes the debug logger and resets it. The next Logger call
// consults NODEUI_DEBUG again.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		err := logger.Sync()
		logger = nil
		return err
	}
	return nil
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}
