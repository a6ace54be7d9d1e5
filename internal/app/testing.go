//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/infrastructure/connector"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/infrastructure/persistence"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/config"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	DocumentExtractionService documents.DocumentExtractionService
	DocumentMetadataService   documents.DocumentMetadataService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests.
// No OCR provider is configured, so image extraction fails with ErrOCRUnavailable.
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	ctx := context.Background()
	logger := testutil.SetupTestLogger(t)

	dbContext := persistence.SetupTestDB(t, dbType)

	ocrConnector, err := connector.NewOCRConnector(ctx, &config.OCRSettings{Provider: config.NoneOCRProvider}, logger)
	require.NoError(t, err, "Failed to create OCR connector")

	extractionService, err := NewDocumentExtractionService(dbContext.DocumentRepo, ocrConnector, logger)
	require.NoError(t, err, "Failed to create DocumentExtractionService")

	metadataService, err := NewDocumentMetadataService(dbContext.DocumentRepo, logger)
	require.NoError(t, err, "Failed to create DocumentMetadataService")

	return &TestServices{
		DocumentExtractionService: extractionService,
		DocumentMetadataService:   metadataService,
		DBContext:                 dbContext,
	}
}
