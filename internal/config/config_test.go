package config

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Color)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("EMPLOYEE_LOG_LEVEL", "debug")
	t.Setenv("EMPLOYEE_LOG_FORMAT", "JSON")
	t.Setenv("EMPLOYEE_COLOR", "true")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Color)
}

func TestLoad_InvalidValues(t *testing.T) {
	v := New()
	v.Set(KeyLogLevel, "loud")
	_, err := Load(v)
	assert.Error(t, err)

	v = New()
	v.Set(KeyLogFormat, "xml")
	_, err = Load(v)
	assert.Error(t, err)
}

func TestLogConfig_NewLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := LogConfig{Level: slog.LevelWarn, Format: "json"}.NewLogger(buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
