package logger

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// LevelCritical sits above slog.LevelError so critical entries can be filtered on.
const LevelCritical = slog.Level(12)

// InitLogger initializes the singleton logger.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the initialized logger instance.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

func newLogger(c *config.LoggerSettings) (Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch c.LogType {
	case config.LogTypeConsole:
		return NewConsoleLogger(c.LogLevel), nil
	case config.LogTypeFile:
		return NewFileLogger(c.LogLevel, c.FilePath, c.MaxSize, c.MaxBackups, c.MaxAge), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", c.LogType)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	case config.LogLevelCritical:
		return LevelCritical
	default:
		return slog.LevelInfo
	}
}

// splitArgs separates a message followed by key/value pairs, as in
// Info("document extracted", "document_id", id), into slog attributes. Any
// other argument list is concatenated into the message.
func splitArgs(args ...interface{}) (string, []any) {
	if len(args) >= 3 && len(args)%2 == 1 {
		msg, ok := args[0].(string)
		for i := 1; ok && i < len(args); i += 2 {
			key, isString := args[i].(string)
			ok = isString && key != "" && !strings.ContainsAny(key, " \t")
		}
		if ok {
			return msg, args[1:]
		}
	}
	return formatArgs(args...), nil
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
