//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/infrastructure/persistence/models"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/config"
)

func TestDocumentSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	document := CreateTestDocument(t, uuid.NewString())

	err := ctx.DocumentRepo.Create(context.Background(), document)
	require.NoError(t, err)

	// Verify using GORM model (infrastructure concern)
	var created models.DocumentModel
	err = ctx.DB.First(&created, "id = ?", document.ID).Error
	require.NoError(t, err)
	assert.Equal(t, document.IDNumber, created.IDNumber)
	assert.Equal(t, "05/07/1980", created.BirthDate.Raw)
	assert.Equal(t, "1980-07-05", created.BirthDate.Value)
}

func TestDocumentSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	document := CreateTestDocument(t, uuid.NewString())
	document.Warnings = []string{"first", "second"}
	require.NoError(t, ctx.DocumentRepo.Create(context.Background(), document))

	fetched, err := ctx.DocumentRepo.GetByID(context.Background(), document.ID)
	require.NoError(t, err)
	assert.Equal(t, document.ID, fetched.ID)
	assert.Equal(t, document.FullName, fetched.FullName)
	assert.Equal(t, document.BirthDate, fetched.BirthDate)
	assert.Equal(t, document.Warnings, fetched.Warnings)
}

func TestDocumentSqliteRepository_Create_InvalidDocument(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.DocumentRepo.Create(context.Background(), &documents.Document{})
	assert.ErrorIs(t, err, documents.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "validation")
}

func TestDocumentSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.DocumentRepo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, documents.ErrNotFound)
}

func TestDocumentSqliteRepository_List_WithFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	userID := uuid.NewString()
	mx := CreateTestDocument(t, userID)
	co := CreateTestDocumentWithOptions(t, userID, TestCountryCO, TestDocumentTypeNationalID, documents.StatusNeedsReview)
	passport := CreateTestDocumentWithOptions(t, uuid.NewString(), TestCountryMX, TestDocumentTypePassport, documents.StatusReviewed)
	for _, d := range []*documents.Document{mx, co, passport} {
		require.NoError(t, ctx.DocumentRepo.Create(context.Background(), d))
	}

	tests := []struct {
		name  string
		query *documents.DocumentQuery
		want  []string
	}{
		{"by country", &documents.DocumentQuery{Country: TestCountryCO}, []string{co.ID}},
		{"by status", &documents.DocumentQuery{Status: documents.StatusReviewed}, []string{passport.ID}},
		{"by type", &documents.DocumentQuery{DocumentType: TestDocumentTypePassport}, []string{passport.ID}},
		{"by user", &documents.DocumentQuery{UserID: userID, SortBy: "country"}, []string{co.ID, mx.ID}},
		{"by id number", &documents.DocumentQuery{IDNumber: "GOVM800705MJCMLR05", Country: TestCountryMX, Status: documents.StatusExtracted}, []string{mx.ID}},
		{"created since", &documents.DocumentQuery{DateTimeCreated: time.Now().Add(time.Hour)}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := ctx.DocumentRepo.List(context.Background(), tt.query)
			require.NoError(t, err)

			ids := make([]string, len(list))
			for i, d := range list {
				ids[i] = d.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestDocumentSqliteRepository_List_SortAndPagination(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	userID := uuid.NewString()
	var created []*documents.Document
	for i := 0; i < 3; i++ {
		d := CreateTestDocument(t, userID)
		d.DateTimeCreated = d.DateTimeCreated.Add(time.Duration(i) * time.Minute)
		require.NoError(t, ctx.DocumentRepo.Create(context.Background(), d))
		created = append(created, d)
	}

	query := &documents.DocumentQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
		Limit:     1,
		Offset:    1,
	}

	list, err := ctx.DocumentRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created[1].ID, list[0].ID)
}

func TestDocumentSqliteRepository_List_InvalidQuery(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.DocumentRepo.List(context.Background(), &documents.DocumentQuery{SortBy: "raw_text; DROP TABLE documents"})
	assert.ErrorIs(t, err, documents.ErrInvalidArgument)
}

func TestDocumentSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	document := CreateTestDocument(t, uuid.NewString())
	require.NoError(t, ctx.DocumentRepo.Create(context.Background(), document))

	document.Status = documents.StatusReviewed
	document.ExpiryDate = documents.DateValue{Raw: "01/01/2030", Value: "2030-01-01", Format: "DD/MM/YYYY", Confidence: 1}
	require.NoError(t, ctx.DocumentRepo.UpdateByID(context.Background(), document))

	fetched, err := ctx.DocumentRepo.GetByID(context.Background(), document.ID)
	require.NoError(t, err)
	assert.Equal(t, documents.StatusReviewed, fetched.Status)
	assert.Equal(t, "2030-01-01", fetched.ExpiryDate.Value)
}

func TestDocumentSqliteRepository_UpdateByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.DocumentRepo.UpdateByID(context.Background(), CreateTestDocument(t, uuid.NewString()))
	assert.ErrorIs(t, err, documents.ErrNotFound)
}

func TestDocumentSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	document := CreateTestDocument(t, uuid.NewString())
	require.NoError(t, ctx.DocumentRepo.Create(context.Background(), document))

	require.NoError(t, ctx.DocumentRepo.DeleteByID(context.Background(), document.ID))

	_, err := ctx.DocumentRepo.GetByID(context.Background(), document.ID)
	assert.ErrorIs(t, err, documents.ErrNotFound)

	err = ctx.DocumentRepo.DeleteByID(context.Background(), document.ID)
	assert.ErrorIs(t, err, documents.ErrNotFound)
}
