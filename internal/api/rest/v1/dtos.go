package v1

import (
	"time"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/fields"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/validators"
)

// ParseDateRequest is the body of POST /dates/parse
type ParseDateRequest struct {
	Value   string `json:"value" validate:"required,max=64"`
	Country string `json:"country" validate:"omitempty,max=64"`
}

// Validate for validating ParseDateRequest struct
func (r *ParseDateRequest) Validate() error {
	return validators.Struct(r)
}

// ExtractRequest is the body of POST /fields/extract and POST /documents
type ExtractRequest struct {
	Text    string `json:"text" validate:"required"`
	Country string `json:"country" validate:"omitempty,max=64"`
}

// Validate for validating ExtractRequest struct
func (r *ExtractRequest) Validate() error {
	return validators.Struct(r)
}

// ResolveDateRequest is the body of PATCH /documents/:id/dates
type ResolveDateRequest struct {
	Field  string `json:"field" validate:"required,dateField"`
	Format string `json:"format" validate:"required,dateFormat"`
}

// Validate for validating ResolveDateRequest struct
func (r *ResolveDateRequest) Validate() error {
	return validators.Struct(r)
}

// CandidateResponse is one possible reading of an ambiguous date
type CandidateResponse struct {
	Format     string `json:"format"`
	Normalized string `json:"normalized"`
}

// DateResultResponse is the classification of a single date
type DateResultResponse struct {
	Original    string              `json:"original"`
	Display     string              `json:"display"`
	Format      string              `json:"format"`
	Normalized  string              `json:"normalized,omitempty"`
	Confidence  float64             `json:"confidence"`
	Ambiguous   bool                `json:"ambiguous"`
	CountryHint string              `json:"country_hint,omitempty"`
	Candidates  []CandidateResponse `json:"candidates,omitempty"`
}

func newDateResultResponse(r dates.Result) DateResultResponse {
	resp := DateResultResponse{
		Original:    r.Original,
		Display:     r.Display(),
		Format:      string(r.Format),
		Normalized:  r.Normalized,
		Confidence:  r.Confidence,
		Ambiguous:   r.Ambiguous,
		CountryHint: r.CountryHint,
	}
	for _, c := range r.Candidates {
		resp.Candidates = append(resp.Candidates, CandidateResponse{Format: string(c.Format), Normalized: c.Normalized})
	}
	return resp
}

// FieldsResponse is the outcome of a stateless extraction
type FieldsResponse struct {
	fields.Fields
	NeedsReview bool `json:"needs_review"`
}

func newFieldsResponse(f fields.Fields) FieldsResponse {
	return FieldsResponse{Fields: f, NeedsReview: f.NeedsReview()}
}

// DateValueResponse is a stored document date
type DateValueResponse struct {
	Raw        string  `json:"raw"`
	Value      string  `json:"value,omitempty"`
	Format     string  `json:"format"`
	Confidence float64 `json:"confidence"`
}

func newDateValueResponse(v documents.DateValue) *DateValueResponse {
	if !v.Present() {
		return nil
	}
	return &DateValueResponse{Raw: v.Raw, Value: v.Value, Format: v.Format, Confidence: v.Confidence}
}

// DocumentResponse is a persisted document
type DocumentResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	Source          string             `json:"source"`
	Country         string             `json:"country,omitempty"`
	DocumentType    string             `json:"document_type"`
	IDKind          string             `json:"id_kind,omitempty"`
	IDNumber        string             `json:"id_number,omitempty"`
	IDMethod        string             `json:"id_method"`
	IDConfidence    float64            `json:"id_confidence"`
	GivenNames      string             `json:"given_names,omitempty"`
	Surnames        string             `json:"surnames,omitempty"`
	FullName        string             `json:"full_name,omitempty"`
	BirthDate       *DateValueResponse `json:"birth_date,omitempty"`
	ExpiryDate      *DateValueResponse `json:"expiry_date,omitempty"`
	IssueDate       *DateValueResponse `json:"issue_date,omitempty"`
	Sex             string             `json:"sex,omitempty"`
	Nationality     string             `json:"nationality,omitempty"`
	RawText         string             `json:"raw_text"`
	Status          string             `json:"status"`
	Warnings        []string           `json:"warnings"`
	DateTimeCreated time.Time          `json:"date_time_created"`
	DateTimeUpdated time.Time          `json:"date_time_updated"`
}

func newDocumentResponse(d *documents.Document) DocumentResponse {
	warnings := d.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return DocumentResponse{
		ID:              d.ID,
		UserID:          d.UserID,
		Source:          d.Source,
		Country:         d.Country,
		DocumentType:    d.DocumentType,
		IDKind:          d.IDKind,
		IDNumber:        d.IDNumber,
		IDMethod:        d.IDMethod,
		IDConfidence:    d.IDConfidence,
		GivenNames:      d.GivenNames,
		Surnames:        d.Surnames,
		FullName:        d.FullName,
		BirthDate:       newDateValueResponse(d.BirthDate),
		ExpiryDate:      newDateValueResponse(d.ExpiryDate),
		IssueDate:       newDateValueResponse(d.IssueDate),
		Sex:             d.Sex,
		Nationality:     d.Nationality,
		RawText:         d.RawText,
		Status:          d.Status,
		Warnings:        warnings,
		DateTimeCreated: d.DateTimeCreated,
		DateTimeUpdated: d.DateTimeUpdated,
	}
}

// TokenResponse is the token set returned by the login callback
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	IDToken      string    `json:"id_token,omitempty"`
	Expiry       time.Time `json:"expiry"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is returned on any failure
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries an informational message
type InfoResponse struct {
	Message string `json:"message"`
}
