// Package documents defines the persisted result of a document intake: the
// Document entity, its list query and the contracts of the services,
// repository and OCR connector built around it.
package documents
