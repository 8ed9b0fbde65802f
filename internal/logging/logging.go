package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLevel maps a level name to a log level. Unknown names mean info.
func ParseLevel(level string) log.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return log.DebugLevel
	case "WARN":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	case "FATAL":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Setup configures the default logger to write to a file instead of the
// terminal the control draws on. An empty path creates a temp file. The
// returned closer flushes and closes the file.
func Setup(level, path string) (string, io.Closer, error) {
	var (
		f   *os.File
		err error
	)
	if path == "" {
		f, err = os.CreateTemp("", "multiselect-*.log")
	} else {
		if err = os.MkdirAll(filepath.Dir(path), 0755); err == nil {
			f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		}
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true})
	logger.SetLevel(ParseLevel(level))
	log.SetDefault(logger)

	log.With("component", "app").Debug("logging started", "logFile", f.Name(), "level", level)
	return f.Name(), f, nil
}
