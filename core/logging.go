package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const (
	// LogFileName is the debug log written under the configured log directory
	LogFileName = "tint-arena.log"
	logPrefix   = "tint-arena"
)

// SetupLogging installs the process-wide logger
// With debug off all output is discarded; the front-ends own stdout/stderr while running
// Returned closer is nil when nothing was opened
func SetupLogging(debug bool, dir string) (io.Closer, error) {
	if !debug {
		log.SetDefault(log.NewWithOptions(io.Discard, log.Options{Prefix: logPrefix}))
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, LogFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Prefix:          logPrefix,
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
	})
	log.SetDefault(logger)
	log.Info("logging started", "path", path)

	return f, nil
}
