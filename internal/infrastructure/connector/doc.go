// Package connector implements the documents.OCRConnector contract on top
// of the Gemini vision models.
package connector
