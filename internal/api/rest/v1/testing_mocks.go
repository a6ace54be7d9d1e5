//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"

	"github.com/stretchr/testify/mock"
)

// MockDocumentExtractionService is a mock implementation of DocumentExtractionService
type MockDocumentExtractionService struct {
	mock.Mock
}

func (m *MockDocumentExtractionService) ExtractFromText(ctx context.Context, userID, text, countryHint string) (*documents.Document, error) {
	args := m.Called(ctx, userID, text, countryHint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Document), args.Error(1)
}

func (m *MockDocumentExtractionService) ExtractFromImage(ctx context.Context, userID string, image []byte, mimeType, countryHint string) (*documents.Document, error) {
	args := m.Called(ctx, userID, image, mimeType, countryHint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Document), args.Error(1)
}

// MockDocumentMetadataService is a mock implementation of DocumentMetadataService
type MockDocumentMetadataService struct {
	mock.Mock
}

func (m *MockDocumentMetadataService) List(ctx context.Context, query *documents.DocumentQuery) ([]*documents.Document, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documents.Document), args.Error(1)
}

func (m *MockDocumentMetadataService) GetByID(ctx context.Context, documentID string) (*documents.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Document), args.Error(1)
}

func (m *MockDocumentMetadataService) DeleteByID(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

func (m *MockDocumentMetadataService) ResolveDate(ctx context.Context, documentID, field string, format dates.Format) (*documents.Document, error) {
	args := m.Called(ctx, documentID, field, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Document), args.Error(1)
}
