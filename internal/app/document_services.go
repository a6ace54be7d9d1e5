package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/fields"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/logger"
)

// documentExtractionService implements the DocumentExtractionService interface
type documentExtractionService struct {
	documentRepository documents.DocumentRepository
	ocrConnector       documents.OCRConnector
	logger             logger.Logger
}

// NewDocumentExtractionService creates a new instance of DocumentExtractionService
func NewDocumentExtractionService(
	documentRepository documents.DocumentRepository,
	ocrConnector documents.OCRConnector,
	logger logger.Logger,
) (documents.DocumentExtractionService, error) {
	if documentRepository == nil || ocrConnector == nil {
		return nil, fmt.Errorf("document repository and OCR connector are required")
	}
	return &documentExtractionService{
		documentRepository: documentRepository,
		ocrConnector:       ocrConnector,
		logger:             logger,
	}, nil
}

// ExtractFromText extracts the fields of text and stores the resulting document
func (s *documentExtractionService) ExtractFromText(ctx context.Context, userID, text, countryHint string) (*documents.Document, error) {
	return s.extract(ctx, userID, documents.SourceText, text, countryHint)
}

// ExtractFromImage transcribes image and stores the document extracted from the transcription
func (s *documentExtractionService) ExtractFromImage(ctx context.Context, userID string, image []byte, mimeType, countryHint string) (*documents.Document, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: no image provided", documents.ErrInvalidArgument)
	}

	text, err := s.ocrConnector.ExtractText(ctx, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to transcribe image: %w", err)
	}

	return s.extract(ctx, userID, documents.SourceImage, text, countryHint)
}

func (s *documentExtractionService) extract(ctx context.Context, userID, source, text, countryHint string) (*documents.Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: document text is empty", documents.ErrInvalidArgument)
	}

	f := fields.Extract(text, countryHint)
	document := documents.NewDocument(userID, source, text, f)

	if err := s.documentRepository.Create(ctx, document); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	s.logger.Info("document extracted",
		"document_id", document.ID,
		"source", source,
		"country", document.Country,
		"document_type", document.DocumentType,
		"status", document.Status)

	return document, nil
}

// documentMetadataService implements the DocumentMetadataService interface
type documentMetadataService struct {
	documentRepository documents.DocumentRepository
	logger             logger.Logger
}

// NewDocumentMetadataService creates a new instance of DocumentMetadataService
func NewDocumentMetadataService(documentRepository documents.DocumentRepository, logger logger.Logger) (documents.DocumentMetadataService, error) {
	if documentRepository == nil {
		return nil, fmt.Errorf("document repository is required")
	}
	return &documentMetadataService{
		documentRepository: documentRepository,
		logger:             logger,
	}, nil
}

// List retrieves documents matching query
func (s *documentMetadataService) List(ctx context.Context, query *documents.DocumentQuery) ([]*documents.Document, error) {
	list, err := s.documentRepository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return list, nil
}

// GetByID retrieves a document by ID
func (s *documentMetadataService) GetByID(ctx context.Context, documentID string) (*documents.Document, error) {
	document, err := s.documentRepository.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return document, nil
}

// DeleteByID deletes a document by ID
func (s *documentMetadataService) DeleteByID(ctx context.Context, documentID string) error {
	if err := s.documentRepository.DeleteByID(ctx, documentID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ResolveDate applies the reviewer's reading to one stored date
func (s *documentMetadataService) ResolveDate(ctx context.Context, documentID, field string, format dates.Format) (*documents.Document, error) {
	document, err := s.documentRepository.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := document.ResolveDate(field, format); err != nil {
		return nil, err
	}

	if err := s.documentRepository.UpdateByID(ctx, document); err != nil {
		return nil, fmt.Errorf("failed to store resolved date: %w", err)
	}

	s.logger.Info("document date resolved",
		"document_id", document.ID,
		"field", field,
		"format", string(format),
		"status", document.Status)

	return document, nil
}
