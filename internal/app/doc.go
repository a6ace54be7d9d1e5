// Package app wires the field extraction into the document lifecycle:
// transcription, extraction, persistence and review.
package app
