package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultGeminiModel is used when no OCR model is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// OCRSettings configures the vision model used to transcribe document images.
type OCRSettings struct {
	Provider       string `mapstructure:"provider" validate:"required,oneof=gemini none"`
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0,lte=300"`
}

// Validate checks that all fields in OCRSettings are valid
func (s *OCRSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for OCRSettings: %w", err)
	}

	if s.Provider == GeminiOCRProvider && s.APIKey == "" {
		return fmt.Errorf("api key is required for the gemini OCR provider")
	}

	return nil
}

// ModelOrDefault returns the configured model name or DefaultGeminiModel.
func (s *OCRSettings) ModelOrDefault() string {
	if s.Model == "" {
		return DefaultGeminiModel
	}
	return s.Model
}
