package documents

import (
	"context"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"
)

// DocumentExtractionService defines methods for turning a document into a
// persisted Document.
type DocumentExtractionService interface {
	// ExtractFromText extracts the fields of an already transcribed document and stores the result.
	// It returns the stored Document and any error encountered during extraction or persistence.
	ExtractFromText(ctx context.Context, userID, text, countryHint string) (*Document, error)

	// ExtractFromImage transcribes an image through the OCR connector before extracting its fields.
	// The image itself is not stored.
	ExtractFromImage(ctx context.Context, userID string, image []byte, mimeType, countryHint string) (*Document, error)
}

// DocumentMetadataService defines methods for retrieving, reviewing and deleting documents.
type DocumentMetadataService interface {
	// List retrieves all documents considering a query filter when set.
	// It returns a slice of Document and any error encountered during the retrieval.
	List(ctx context.Context, query *DocumentQuery) ([]*Document, error)

	// GetByID retrieves a document by ID.
	// It returns ErrNotFound when no document has that ID.
	GetByID(ctx context.Context, documentID string) (*Document, error)

	// DeleteByID deletes a document by ID.
	// It returns ErrNotFound when no document has that ID.
	DeleteByID(ctx context.Context, documentID string) error

	// ResolveDate re-reads one of the stored dates with the format chosen by a reviewer.
	// It returns the updated Document, ErrNotFound or ErrInvalidArgument.
	ResolveDate(ctx context.Context, documentID, field string, format dates.Format) (*Document, error)
}

// DocumentRepository defines the interface for Document-related operations
type DocumentRepository interface {
	// Create adds a new Document to the database
	Create(ctx context.Context, document *Document) error
	// List lists Documents in the database with optional filter
	List(ctx context.Context, query *DocumentQuery) ([]*Document, error)
	// GetByID retrieves a Document from the database by ID
	GetByID(ctx context.Context, documentID string) (*Document, error)
	// UpdateByID updates a Document in the database by ID
	UpdateByID(ctx context.Context, document *Document) error
	// DeleteByID deletes a Document in the database by ID
	DeleteByID(ctx context.Context, documentID string) error
}

// OCRConnector is an interface for transcribing document images.
type OCRConnector interface {
	// ExtractText returns the text printed on the image, line by line.
	ExtractText(ctx context.Context, image []byte, mimeType string) (string, error)
}
