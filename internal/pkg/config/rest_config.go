package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig is the configuration of the REST API process.
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	OCR      OCRSettings      `mapstructure:"ocr"`
	Auth     AuthSettings     `mapstructure:"auth"`
}

// Validate checks the whole configuration tree.
func (c *RestConfig) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.OCR.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	return nil
}

// restDefaults are applied before the file is read. Every key that may be
// overridden by an environment variable needs an entry so that viper binds it.
var restDefaults = map[string]any{
	"port":                "8080",
	"logger.log_level":    LogLevelInfo,
	"logger.log_type":     LogTypeConsole,
	"logger.file_path":    "",
	"logger.max_size":     10,
	"logger.max_backups":  3,
	"logger.max_age":      28,
	"database.type":       SqliteDbType,
	"database.dsn":        "hades.db",
	"database.name":       "",
	"ocr.provider":        NoneOCRProvider,
	"ocr.api_key":         "",
	"ocr.model":           DefaultGeminiModel,
	"ocr.timeout_seconds": 60,
	"auth.enabled":        false,
	"auth.issuer":         "",
	"auth.audience":       "",
	"auth.algorithm":      AuthAlgorithmRS256,
	"auth.public_key_pem": "",
	"auth.secret":         "",
	"auth.required_role":  "",
	"auth.client_id":      "",
	"auth.client_secret":  "",
	"auth.redirect_url":   "",
}

// InitializeRestConfig loads the REST configuration from the YAML file at
// path (optional when empty) and HADES_* environment variables.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v, err := newViper(path, restDefaults)
	if err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func newViper(path string, defaults map[string]any) (*viper.Viper, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		return v, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return v, nil
}
