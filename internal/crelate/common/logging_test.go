package common

import "testing"

func TestNewSilentLogger(t *testing.T) {
	logger := NewSilentLogger()
	if logger == nil {
		t.Fatal("expected logger instance")
	}
	// Must not panic or write anywhere.
	logger.Info().Msg("silent")
	logger.Error().Msg("silent")
}

func TestWithCorrelationIdReturnsNewLogger(t *testing.T) {
	logger := NewSilentLogger()
	child := logger.WithCorrelationId("abc-123")
	if child == nil {
		t.Fatal("expected child logger")
	}
	if child == logger {
		t.Error("expected a new Logger instance, not the receiver")
	}
	child.Debug().Msg("tagged")
}

func TestNewLoggerFromConfigDefaults(t *testing.T) {
	logger := NewLoggerFromConfig(LoggingConfig{Outputs: []string{"console"}})
	if logger == nil {
		t.Fatal("expected logger instance")
	}
}
