//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"

	"github.com/stretchr/testify/mock"
)

// MockDocumentRepository is a mock implementation of DocumentRepository
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, document *documents.Document) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockDocumentRepository) List(ctx context.Context, query *documents.DocumentQuery) ([]*documents.Document, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documents.Document), args.Error(1)
}

func (m *MockDocumentRepository) GetByID(ctx context.Context, documentID string) (*documents.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Document), args.Error(1)
}

func (m *MockDocumentRepository) UpdateByID(ctx context.Context, document *documents.Document) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteByID(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

// MockOCRConnector is a mock implementation of OCRConnector
type MockOCRConnector struct {
	mock.Mock
}

func (m *MockOCRConnector) ExtractText(ctx context.Context, image []byte, mimeType string) (string, error) {
	args := m.Called(ctx, image, mimeType)
	return args.String(0), args.Error(1)
}
