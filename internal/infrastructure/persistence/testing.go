//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/config"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/testutil"
)

// Test constants
const (
	TestCountryMX = "MX"
	TestCountryCO = "CO"

	TestDocumentTypeNationalID = "NATIONAL_ID"
	TestDocumentTypePassport   = "PASSPORT"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB           *gorm.DB
	DocumentRepo documents.DocumentRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	documentRepo, err := NewGormDocumentRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create document repository")

	return &TestContext{
		DB:           db,
		DocumentRepo: documentRepo,
	}
}

// CreateTestDocument creates a valid national ID document for userID
func CreateTestDocument(t *testing.T, userID string) *documents.Document {
	t.Helper()

	return CreateTestDocumentWithOptions(t, userID, TestCountryMX, TestDocumentTypeNationalID, documents.StatusExtracted)
}

// CreateTestDocumentWithOptions creates a test document with custom options
func CreateTestDocumentWithOptions(t *testing.T, userID, country, documentType, status string) *documents.Document {
	t.Helper()

	now := time.Now().UTC()
	return &documents.Document{
		ID:           uuid.NewString(),
		UserID:       userID,
		Source:       documents.SourceText,
		Country:      country,
		DocumentType: documentType,
		IDKind:       "CURP",
		IDNumber:     "GOVM800705MJCMLR05",
		IDMethod:     "keyword",
		IDConfidence: 0.95,
		GivenNames:   "MARGARITA",
		Surnames:     "GOMEZ VELAZQUEZ",
		FullName:     "MARGARITA GOMEZ VELAZQUEZ",
		BirthDate: documents.DateValue{
			Raw: "05/07/1980", Value: "1980-07-05", Format: "DD/MM/YYYY", Confidence: 0.7,
		},
		Sex:             "F",
		RawText:         "CURP GOVM800705MJCMLR05\nFECHA DE NACIMIENTO 05/07/1980",
		Status:          status,
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}
}
