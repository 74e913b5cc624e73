package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelUnmarshalText(t *testing.T) {
	tests := []struct {
		text string
		want LogLevel
	}{
		{"OFF", LogLevelOff},
		{"ERROR", LogLevelError},
		{"warn", LogLevelWarn},
		{"Info", LogLevelInfo},
		{"DEBUG", LogLevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var level LogLevel
			require.NoError(t, level.UnmarshalText([]byte(tt.text)))
			assert.Equal(t, tt.want, level)
		})
	}

	var level LogLevel
	assert.Error(t, level.UnmarshalText([]byte("verbose")))
}

func TestLogLevelString(t *testing.T) {
	level := LogLevelDebug
	assert.Equal(t, "DEBUG", level.String())
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	logger := NewLogger(LogLevelError)
	// Below-threshold calls must be no-ops; this exercises the gating paths.
	logger.Debug("ignored")
	logger.Info("ignored")
	logger.Warn("ignored")
	logger.SetLevel(LogLevelOff)
	logger.Error("ignored after off")
}
