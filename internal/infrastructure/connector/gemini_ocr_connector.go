package connector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/config"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/logger"
)

// transcriptionPrompt asks for a verbatim transcript; field extraction is
// done locally on the returned text.
const transcriptionPrompt = `Transcribe all text printed on this identity document exactly as it appears.
Keep one printed line per output line and keep the original order, spelling, accents and punctuation.
Include the machine readable zone if present, character by character.
Do not translate, summarize, correct or label anything. Output only the transcription.`

// supportedImageTypes are the MIME types accepted by the vision models.
var supportedImageTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
	"image/heic":      {},
	"image/heif":      {},
	"application/pdf": {},
}

// contentGenerator is the part of the genai client used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiOCRConnector struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	logger  logger.Logger
}

// NewGeminiOCRConnector creates an OCRConnector backed by the Gemini API
func NewGeminiOCRConnector(ctx context.Context, settings *config.OCRSettings, logger logger.Logger) (documents.OCRConnector, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  settings.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newGeminiOCRConnector(client.Models, settings, logger), nil
}

func newGeminiOCRConnector(models contentGenerator, settings *config.OCRSettings, logger logger.Logger) *geminiOCRConnector {
	return &geminiOCRConnector{
		models:  models,
		model:   settings.ModelOrDefault(),
		timeout: time.Duration(settings.TimeoutSeconds) * time.Second,
		logger:  logger,
	}
}

// NewOCRConnector returns the connector selected by settings.Provider. The
// none provider yields a connector that rejects every image.
func NewOCRConnector(ctx context.Context, settings *config.OCRSettings, logger logger.Logger) (documents.OCRConnector, error) {
	switch settings.Provider {
	case config.GeminiOCRProvider:
		return NewGeminiOCRConnector(ctx, settings, logger)
	case config.NoneOCRProvider, "":
		return disabledOCRConnector{}, nil
	default:
		return nil, fmt.Errorf("unsupported OCR provider: %s", settings.Provider)
	}
}

func (c *geminiOCRConnector) ExtractText(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("%w: empty image", documents.ErrInvalidArgument)
	}
	mimeType = strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if _, ok := supportedImageTypes[mimeType]; !ok {
		return "", fmt.Errorf("%w: unsupported image type %q", documents.ErrInvalidArgument, mimeType)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(image, mimeType),
		genai.NewPartFromText(transcriptionPrompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	})
	if err != nil {
		return "", fmt.Errorf("gemini transcription failed: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned no text")
	}

	c.logger.Info("Transcribed image of ", len(image), " bytes with ", c.model)
	return text, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

type disabledOCRConnector struct{}

func (disabledOCRConnector) ExtractText(context.Context, []byte, string) (string, error) {
	return "", documents.ErrOCRUnavailable
}
