//go:generate mockgen -source=logger.go -destination=logger_mock.go -package=logger
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"folio/internal/config"
)

// Logger configuration constants
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"

	ConsoleFormat = "console"
	JSONFormat    = "json"

	TimeFormat = "15:04:05"
)

// Logger interface for application logging
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	WithComponent(name string) Logger
}

// AppLogger implements Logger using zerolog
type AppLogger struct {
	log zerolog.Logger
}

// NewLogger creates a new logger instance from the application config
func NewLogger(cfg *config.Config) Logger {
	return NewLoggerWithOutput(cfg, nil)
}

// NewLoggerWithOutput creates a logger writing to a custom output; a nil
// output selects stdout with the configured format
func NewLoggerWithOutput(cfg *config.Config, customOutput io.Writer) Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = InfoLevel
	}

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = ConsoleFormat
	}

	var output io.Writer

	switch {
	case customOutput != nil:
		output = customOutput
	case cfg.Logging.Format == JSONFormat:
		output = os.Stdout
	default:
		output = newConsoleWriter()
	}

	log := zerolog.
		New(output).
		Level(parseLevel(cfg.Logging.Level)).
		With().
		Timestamp().
		Str("version", config.Version).
		Logger()

	return &AppLogger{log: log}
}

// Debug returns a debug level event
func (l *AppLogger) Debug() *zerolog.Event {
	return l.log.Debug()
}

// Info returns an info level event
func (l *AppLogger) Info() *zerolog.Event {
	return l.log.Info()
}

// Warn returns a warn level event
func (l *AppLogger) Warn() *zerolog.Event {
	return l.log.Warn()
}

// Error returns an error level event
func (l *AppLogger) Error() *zerolog.Event {
	return l.log.Error()
}

// WithComponent returns a logger tagged with a component name
func (l *AppLogger) WithComponent(name string) Logger {
	return &AppLogger{
		log: l.log.With().Str("component", name).Logger(),
	}
}

// newConsoleWriter creates a console writer that renders the component
// field as a bracketed prefix
func newConsoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: TimeFormat,
		FormatFieldName: func(i interface{}) string {
			if s, ok := i.(string); ok && s == "component" {
				return ""
			}

			return fmt.Sprintf("%s=", i)
		},
		FormatPrepare: func(m map[string]interface{}) error {
			if component, ok := m["component"].(string); ok {
				m["component"] = fmt.Sprintf("[%s]", component)
			}

			return nil
		},
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			"component",
			zerolog.MessageFieldName,
		},
	}
}

// parseLevel converts a string level to a zerolog level
func parseLevel(level string) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
