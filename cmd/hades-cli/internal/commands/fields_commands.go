package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/fields"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/infrastructure/connector"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/config"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Environment variables read by fields extract --image-file
const (
	OCRAPIKeyEnv = "HADES_OCR_API_KEY"
	OCRModelEnv  = "HADES_OCR_MODEL"
)

// FieldsCommandHandler encapsulates logic for handling field extraction via CLI.
type FieldsCommandHandler struct {
	logger logger.Logger
	// newOCR builds the connector used for --image-file
	newOCR func(ctx context.Context) (documents.OCRConnector, error)
}

// NewFieldsCommandHandler initializes and returns a FieldsCommandHandler instance.
func NewFieldsCommandHandler() (*FieldsCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &FieldsCommandHandler{
		logger: loggerInstance,
		newOCR: func(ctx context.Context) (documents.OCRConnector, error) {
			settings, err := ReadOCRSettingsFromEnv()
			if err != nil {
				return nil, err
			}
			return connector.NewGeminiOCRConnector(ctx, settings, loggerInstance)
		},
	}, nil
}

// ReadOCRSettingsFromEnv reads the Gemini settings used for image input.
func ReadOCRSettingsFromEnv() (*config.OCRSettings, error) {
	settings := &config.OCRSettings{
		Provider: config.GeminiOCRProvider,
		APIKey:   os.Getenv(OCRAPIKeyEnv),
		Model:    os.Getenv(OCRModelEnv),
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s must be set to read images: %w", OCRAPIKeyEnv, err)
	}
	return settings, nil
}

// ExtractFieldsCmd extracts the fields of a transcribed document (--input-file,
// "-" for stdin) or of an image (--image-file) and prints them as JSON
func (commandHandler *FieldsCommandHandler) ExtractFieldsCmd(cmd *cobra.Command, _ []string) error {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}
	imageFilePath, err := cmd.Flags().GetString("image-file")
	if err != nil {
		return fmt.Errorf("invalid image-file flag: %w", err)
	}
	country, err := cmd.Flags().GetString("country")
	if err != nil {
		return fmt.Errorf("invalid country flag: %w", err)
	}

	var text string
	switch {
	case inputFilePath != "" && imageFilePath != "":
		return fmt.Errorf("--input-file and --image-file are mutually exclusive")
	case inputFilePath == "-":
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(content)
	case inputFilePath != "":
		content, err := os.ReadFile(filepath.Clean(inputFilePath))
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		text = string(content)
	case imageFilePath != "":
		text, err = commandHandler.transcribe(cmd.Context(), imageFilePath)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("one of --input-file or --image-file is required")
	}

	f := fields.Extract(text, country)
	if f.NeedsReview() {
		commandHandler.logger.Warn("document needs review", "warnings", len(f.Warnings))
	}

	return writeJSON(cmd.OutOrStdout(), f)
}

func (commandHandler *FieldsCommandHandler) transcribe(ctx context.Context, imageFilePath string) (string, error) {
	image, err := os.ReadFile(filepath.Clean(imageFilePath))
	if err != nil {
		return "", fmt.Errorf("failed to read image file: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ocr, err := commandHandler.newOCR(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create OCR connector: %w", err)
	}

	text, err := ocr.ExtractText(ctx, image, http.DetectContentType(image))
	if err != nil {
		return "", fmt.Errorf("failed to transcribe image: %w", err)
	}
	return text, nil
}

// InitFieldsCommands registers field extraction commands
func InitFieldsCommands(rootCmd *cobra.Command) error {
	handler, err := NewFieldsCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create fields command handler: %w", err)
	}

	fieldsCmd := &cobra.Command{
		Use:   "fields",
		Short: "Document field extraction commands",
	}

	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract identity number, names, dates and document type",
		RunE:  handler.ExtractFieldsCmd,
	}
	extractCmd.Flags().StringP("input-file", "", "", "Path to a text transcription, - for stdin")
	extractCmd.Flags().StringP("image-file", "", "", "Path to a document image, transcribed with Gemini ("+OCRAPIKeyEnv+")")
	extractCmd.Flags().StringP("country", "", "", "Issuing country hint (code or name)")
	fieldsCmd.AddCommand(extractCmd)

	rootCmd.AddCommand(fieldsCmd)
	return nil
}
