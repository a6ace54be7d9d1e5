package documents

import "errors"

var (
	// ErrNotFound is returned when no document has the requested ID.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidArgument is returned for malformed input such as an unknown
	// date field or a value that cannot be read with the requested format.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrOCRUnavailable is returned for image uploads when no OCR provider is configured.
var ErrOCRUnavailable = errors.New("ocr provider not configured")
