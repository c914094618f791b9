// Package logging builds the zerolog loggers used by the gallery binaries.
//
// The TUI owns the terminal, so it logs JSON lines to a file that the log
// overlay tails. The photo server logs to a colored console writer.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02 15:04:05 MST"

// NewFile returns a JSON logger appending to path and the file to close on
// exit. Parent directories are created as needed.
func NewFile(path string, level zerolog.Level) (zerolog.Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return zerolog.Nop(), io.NopCloser(nil), errors.New("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), io.NopCloser(nil), errors.Wrap(err, "create log dir")
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), errors.Wrap(err, "open log")
	}
	return New(file, level), file, nil
}

// New returns a JSON logger writing to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// NewConsole returns a human-readable logger writing to w.
func NewConsole(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: consoleTimeFormat,
	}

	output.FormatLevel = func(i interface{}) string {
		level, _ := i.(string)
		level = strings.ToUpper(level)
		return fmt.Sprintf("%s| %-6s|\x1b[0m", levelColor(level), level)
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("\x1b[1m%s\x1b[0m", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("\x1b[36m%s:\x1b[0m", i)
	}
	output.FormatFieldValue = func(i interface{}) string {
		return fmt.Sprintf("\x1b[32m%s\x1b[0m", i)
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func levelColor(level string) string {
	switch level {
	case "TRACE":
		return "\x1b[36m"
	case "DEBUG":
		return "\x1b[32m"
	case "INFO":
		return "\x1b[34m"
	case "WARN":
		return "\x1b[33m"
	case "ERROR":
		return "\x1b[31m"
	case "FATAL":
		return "\x1b[31;1m"
	case "PANIC":
		return "\x1b[35m"
	default:
		return "\x1b[0m"
	}
}
