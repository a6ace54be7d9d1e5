// Package fields pulls the identity number, names, dates and document type
// out of the OCR transcription of an identity document.
//
// Extraction is table driven: every supported country lists the identifiers
// it prints together with the labels that usually precede them. A value found
// next to its label is trusted more than a bare run of digits of the right
// length, and a valid machine readable zone is trusted more than both.
package fields
