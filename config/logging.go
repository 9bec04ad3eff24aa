package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// LogLevel is the minimum level emitted by the application logger.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// UnmarshalText implements encoding.TextUnmarshaler for LogLevel.
func (l *LogLevel) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "debug", "info", "warn", "error":
		*l = LogLevel(v)
		return nil
	case "warning":
		*l = LogLevelWarn
		return nil
	default:
		return fmt.Errorf("invalid LogLevel: %q (valid options: debug, info, warn, error)", v)
	}
}

// Slog converts the level for slog handlers. Unknown values map to info.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogConfig contains logger configuration.
type LogConfig struct {
	Level LogLevel `env:"LOG_LEVEL" envDefault:"info"`
}
