package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the component-tagged logging interface used across the application.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// Output formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ParseLevel maps a configuration string onto a zerolog level.
// "warning" is accepted as an alias for "warn".
func ParseLevel(level string) (zerolog.Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if normalized == "warning" {
		normalized = "warn"
	}

	switch normalized {
	case "debug", "info", "warn", "error":
		return zerolog.ParseLevel(normalized)
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// New builds a logger writing to stdout in the requested format.
func New(level, format string) (*ZerologAdapter, error) {
	return NewWithWriter(os.Stdout, level, format)
}

// NewWithWriter builds a logger writing to w in the requested format.
func NewWithWriter(w io.Writer, level, format string) (*ZerologAdapter, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "", FormatConsole:
		return NewZerolog(zerolog.ConsoleWriter{Out: w, NoColor: w != os.Stdout}, lvl), nil
	case FormatJSON:
		return NewZerolog(w, lvl), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
