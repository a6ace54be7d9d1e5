package fields

import "github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"

// DocumentType classifies the scanned document.
type DocumentType string

// Supported document types
const (
	DocumentTypePassport        DocumentType = "PASSPORT"
	DocumentTypeNationalID      DocumentType = "NATIONAL_ID"
	DocumentTypeDriverLicense   DocumentType = "DRIVER_LICENSE"
	DocumentTypeResidencePermit DocumentType = "RESIDENCE_PERMIT"
	DocumentTypeUnknown         DocumentType = "UNKNOWN"
)

// Method records how an identifier was located.
type Method string

// Supported methods
const (
	MethodKeyword  Method = "keyword"
	MethodFallback Method = "fallback"
	MethodMRZ      Method = "mrz"
	MethodNone     Method = "none"
)

// Confidence attached to an IDMatch for each Method
const (
	ConfidenceKeyword  = 0.95
	ConfidenceFallback = 0.6
	ConfidenceMRZ      = 1.0
)

// Warnings reported by Extract
const (
	WarningNoID           = "no identity number found"
	WarningNoNames        = "no names found"
	WarningFallbackID     = "identity number found without its label"
	WarningAmbiguousBirth = "birth date is ambiguous"
	WarningAmbiguousExp   = "expiry date is ambiguous"
	WarningAmbiguousIssue = "issue date is ambiguous"
	WarningInvalidBirth   = "birth date could not be read"
	WarningInvalidExp     = "expiry date could not be read"
	WarningInvalidIssue   = "issue date could not be read"
	WarningMRZChecksum    = "machine readable zone failed its check digits"
	WarningUnknownCountry = "country could not be determined"
)

// IDMatch is an identity number located in the text.
type IDMatch struct {
	Kind       string  `json:"kind"`
	Value      string  `json:"value"`
	Method     Method  `json:"method"`
	Confidence float64 `json:"confidence"`
	Country    string  `json:"country,omitempty"`
}

// Dates groups the labelled dates of a document. Nil means the label was
// not found.
type Dates struct {
	Birth  *dates.Result
	Expiry *dates.Result
	Issue  *dates.Result
}

// Fields is everything Extract could read from a document.
type Fields struct {
	Country      string        `json:"country,omitempty"`
	DocumentType DocumentType  `json:"document_type"`
	ID           *IDMatch      `json:"id,omitempty"`
	GivenNames   string        `json:"given_names,omitempty"`
	Surnames     string        `json:"surnames,omitempty"`
	FullName     string        `json:"full_name,omitempty"`
	BirthDate    *dates.Result `json:"birth_date,omitempty"`
	ExpiryDate   *dates.Result `json:"expiry_date,omitempty"`
	IssueDate    *dates.Result `json:"issue_date,omitempty"`
	Sex          string        `json:"sex,omitempty"`
	Nationality  string        `json:"nationality,omitempty"`
	MRZ          *MRZ          `json:"mrz,omitempty"`
	Warnings     []string      `json:"warnings,omitempty"`
}

// NeedsReview reports whether a person has to look at the document: no
// identity number was found or a date could not be settled.
func (f Fields) NeedsReview() bool {
	if f.ID == nil {
		return true
	}
	for _, d := range []*dates.Result{f.BirthDate, f.ExpiryDate, f.IssueDate} {
		if d != nil && !d.Resolved() {
			return true
		}
	}
	return false
}
