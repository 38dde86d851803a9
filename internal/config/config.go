package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix - префикс переменных окружения
const EnvPrefix = "EMPLOYEE"

// Ключи конфигурации
const (
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyColor     = "color"
)

// Config содержит настройки приложения
type Config struct {
	Log   LogConfig
	Color bool
}

// LogConfig - настройки логирования
type LogConfig struct {
	Level  slog.Level
	Format string
}

// New создаёт viper с значениями по умолчанию и чтением окружения
// (EMPLOYEE_LOG_LEVEL, EMPLOYEE_LOG_FORMAT, EMPLOYEE_COLOR)
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyColor, false)
	return v
}

// Load загружает и проверяет конфигурацию
func Load(v *viper.Viper) (*Config, error) {
	level, err := parseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat)))
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("config: log.format must be text or json, got %q", format)
	}

	return &Config{
		Log: LogConfig{
			Level:  level,
			Format: format,
		},
		Color: v.GetBool(KeyColor),
	}, nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, fmt.Errorf("config: log.level: %w", err)
	}
	return level, nil
}

// NewLogger создаёт логгер по настройкам
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
