package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"frontdesk/config"
	"frontdesk/shared/constant"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

// preserve restores the global logger state mutated by a test.
func preserve(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	preserve(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	preserve(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("snapshot store unreachable"))

	assert.Contains(t, buf.String(), "snapshot store unreachable")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		expected zerolog.Level
	}{
		{name: "debug", logLevel: "debug", expected: zerolog.DebugLevel},
		{name: "info", logLevel: "info", expected: zerolog.InfoLevel},
		{name: "warn", logLevel: "warn", expected: zerolog.WarnLevel},
		{name: "error", logLevel: "error", expected: zerolog.ErrorLevel},
		{name: "disabled", logLevel: "disabled", expected: zerolog.Disabled},
		{name: "unknown falls back to trace", logLevel: "loud", expected: zerolog.TraceLevel},
		{name: "empty falls back to info", logLevel: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preserve(t)

			cfg := &config.Config{}
			cfg.Server.Env = constant.ServerEnvDevelopment
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestSetOutput(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		wantJSON bool
	}{
		{name: "production writes JSON lines", env: constant.ServerEnvProduction, wantJSON: true},
		{name: "development writes console text", env: constant.ServerEnvDevelopment, wantJSON: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preserve(t)
			zerolog.SetGlobalLevel(zerolog.TraceLevel)

			var buf bytes.Buffer

			cfg := &config.Config{}
			cfg.Server.Env = tt.env

			logger.SetOutput(cfg, &buf)
			log.Info().Str("invoiceNo", "INV-20240104-000001").Msg("invoice issued")

			assert.Equal(t, tt.wantJSON, bytes.HasPrefix(buf.Bytes(), []byte("{")))
			assert.Contains(t, buf.String(), "INV-20240104-000001")
		})
	}
}

func TestComponent(t *testing.T) {
	preserve(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	componentLogger := logger.Component("notification")
	componentLogger.Info().Msg("dispatched")

	assert.Contains(t, buf.String(), `"component":"notification"`)
}
