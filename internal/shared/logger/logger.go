package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	instance *log.Logger
	once     sync.Once
)

// Get returns the process logger, creating it on first use
func Get() *log.Logger {
	once.Do(func() {
		instance = New(os.Stderr)
	})
	return instance
}

// New builds a logger writing to w with the default options
func New(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// ParseLevel maps a level name to a log level; unknown names map to info
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// SetLevel sets the level of the process logger
func SetLevel(level string) {
	l := Get()
	l.SetLevel(ParseLevel(level))
	l.Debug("log level set", "level", level)
}

// Slog adapts the process logger for packages that take a *slog.Logger
func Slog() *slog.Logger {
	return slog.New(Get())
}
