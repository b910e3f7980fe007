package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"folio/internal/config"
)

func Test_NewLogger_Levels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "Default", level: "", expected: zerolog.InfoLevel},
		{name: "Debug", level: DebugLevel, expected: zerolog.DebugLevel},
		{name: "Warn", level: WarnLevel, expected: zerolog.WarnLevel},
		{name: "Error", level: ErrorLevel, expected: zerolog.ErrorLevel},
		{name: "Unknown falls back to info", level: "bogus", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func Test_NewLoggerWithOutput_WritesToCustomOutput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Format = JSONFormat

	var buf bytes.Buffer
	log := NewLoggerWithOutput(cfg, &buf)

	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), config.Version)
}

func Test_WithComponent(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Format = JSONFormat

	var buf bytes.Buffer
	log := NewLoggerWithOutput(cfg, &buf).WithComponent("NAVBAR")

	log.Info().Msg("ready")

	assert.Contains(t, buf.String(), "NAVBAR")
}

func Test_NewLogger_EmptyFormatDefaultsToConsole(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Format = ""

	log := NewLogger(cfg)

	assert.NotNil(t, log)
	assert.Equal(t, ConsoleFormat, cfg.Logging.Format)
}
