//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/config"
)

func TestDocumentPostgresRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	document := CreateTestDocument(t, uuid.NewString())
	require.NoError(t, ctx.DocumentRepo.Create(context.Background(), document))

	fetched, err := ctx.DocumentRepo.GetByID(context.Background(), document.ID)
	require.NoError(t, err)
	assert.Equal(t, document.ID, fetched.ID)
	assert.Equal(t, document.BirthDate, fetched.BirthDate)
}

func TestDocumentPostgresRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	userID := uuid.NewString()
	require.NoError(t, ctx.DocumentRepo.Create(context.Background(), CreateTestDocument(t, userID)))
	require.NoError(t, ctx.DocumentRepo.Create(context.Background(),
		CreateTestDocumentWithOptions(t, userID, TestCountryCO, TestDocumentTypeNationalID, documents.StatusNeedsReview)))

	list, err := ctx.DocumentRepo.List(context.Background(), &documents.DocumentQuery{UserID: userID})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = ctx.DocumentRepo.List(context.Background(), &documents.DocumentQuery{Status: documents.StatusNeedsReview})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDocumentPostgresRepository_UpdateAndDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	document := CreateTestDocument(t, uuid.NewString())
	require.NoError(t, ctx.DocumentRepo.Create(context.Background(), document))

	document.Status = documents.StatusReviewed
	require.NoError(t, ctx.DocumentRepo.UpdateByID(context.Background(), document))

	fetched, err := ctx.DocumentRepo.GetByID(context.Background(), document.ID)
	require.NoError(t, err)
	assert.Equal(t, documents.StatusReviewed, fetched.Status)

	require.NoError(t, ctx.DocumentRepo.DeleteByID(context.Background(), document.ID))
	_, err = ctx.DocumentRepo.GetByID(context.Background(), document.ID)
	assert.ErrorIs(t, err, documents.ErrNotFound)
}

func TestDocumentPostgresRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	_, err := ctx.DocumentRepo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, documents.ErrNotFound)
}
