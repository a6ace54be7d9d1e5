package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/config"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/logger"
)

// LogLevelEnv overrides the log level of the CLI. Logs share stdout with the
// JSON output, so only errors are logged by default.
const LogLevelEnv = "HADES_LOG_LEVEL"

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelError,
		LogType:  config.LogTypeConsole,
	}
	if level := os.Getenv(LogLevelEnv); level != "" {
		settings.LogLevel = level
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
