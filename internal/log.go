package internal

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLogLevel maps a WATEX_LOG_LEVEL value to a zerolog level.
// Unknown values fall back to info.
func ParseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "ERROR":
		return zerolog.ErrorLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "TRACE":
		return zerolog.TraceLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger creates a console logger writing to out at the given level
func NewLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// NewDefaultLogger creates a logger based on the WATEX_LOG_LEVEL environment variable
func NewDefaultLogger() zerolog.Logger {
	return NewLogger(os.Stderr, ParseLogLevel(os.Getenv("WATEX_LOG_LEVEL")))
}

// Component returns the global logger tagged with a component name
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// SetGlobal installs logger as the package-level zerolog logger
func SetGlobal(logger zerolog.Logger) {
	log.Logger = logger
}
