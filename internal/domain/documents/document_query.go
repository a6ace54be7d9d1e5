package documents

import (
	"time"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/validators"
)

// DocumentQuery represents the filters, sorting and pagination of a document
// listing. Zero values disable a filter.
type DocumentQuery struct {
	Country         string    `validate:"omitempty,countryCode"`
	DocumentType    string    `validate:"omitempty,oneof=PASSPORT NATIONAL_ID DRIVER_LICENSE RESIDENCE_PERMIT UNKNOWN"`
	Status          string    `validate:"omitempty,oneof=extracted needs_review reviewed"`
	IDNumber        string    `validate:"omitempty,max=64"`
	UserID          string    `validate:"omitempty,max=255"`
	DateTimeCreated time.Time `validate:"omitempty"`

	// Pagination properties
	Limit  int `validate:"omitempty,gte=0"`
	Offset int `validate:"omitempty,gte=0"`

	// Sorting properties
	SortBy    string `validate:"omitempty,oneof=date_time_created date_time_updated country document_type status full_name"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewDocumentQuery creates a DocumentQuery with default values.
func NewDocumentQuery() *DocumentQuery {
	return &DocumentQuery{
		Limit:     50,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating DocumentQuery struct
func (q *DocumentQuery) Validate() error {
	return validators.Struct(q)
}
