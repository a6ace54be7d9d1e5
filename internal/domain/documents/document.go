package documents

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/dates"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/fields"
	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/pkg/validators"
)

// Document sources
const (
	SourceText  = "text"
	SourceImage = "image"
)

// Document statuses
const (
	StatusExtracted   = "extracted"
	StatusNeedsReview = "needs_review"
	StatusReviewed    = "reviewed"
)

// Date fields of a document
const (
	FieldBirthDate  = "birth_date"
	FieldExpiryDate = "expiry_date"
	FieldIssueDate  = "issue_date"
)

// DateValue is a date as printed on the document together with its reading.
// Value is empty while the date is ambiguous or unreadable.
type DateValue struct {
	Raw        string  `validate:"max=64"`
	Value      string  `validate:"omitempty,datetime=2006-01-02"`
	Format     string  `validate:"omitempty,oneof=MM/DD/YYYY DD/MM/YYYY YYYY-MM-DD AMBIGUOUS INVALID"`
	Confidence float64 `validate:"gte=0,lte=1"`
}

// Present reports whether the date was found on the document.
func (v DateValue) Present() bool {
	return v.Raw != ""
}

// Unresolved reports whether the date was found but could not be settled.
func (v DateValue) Unresolved() bool {
	return v.Present() && v.Value == ""
}

func dateValueOf(r *dates.Result) DateValue {
	if r == nil {
		return DateValue{}
	}
	return DateValue{
		Raw:        r.Original,
		Value:      r.Normalized,
		Format:     string(r.Format),
		Confidence: r.Confidence,
	}
}

// Document entity
type Document struct {
	ID              string  `validate:"required,uuid4"`
	UserID          string  `validate:"required,min=1,max=255"`
	Source          string  `validate:"required,oneof=text image"`
	Country         string  `validate:"omitempty,max=64"`
	DocumentType    string  `validate:"required,oneof=PASSPORT NATIONAL_ID DRIVER_LICENSE RESIDENCE_PERMIT UNKNOWN"`
	IDKind          string  `validate:"max=32"`
	IDNumber        string  `validate:"max=64"`
	IDMethod        string  `validate:"omitempty,oneof=keyword fallback mrz none"`
	IDConfidence    float64 `validate:"gte=0,lte=1"`
	GivenNames      string  `validate:"max=255"`
	Surnames        string  `validate:"max=255"`
	FullName        string  `validate:"max=512"`
	BirthDate       DateValue
	ExpiryDate      DateValue
	IssueDate       DateValue
	Sex             string    `validate:"omitempty,oneof=M F"`
	Nationality     string    `validate:"max=64"`
	RawText         string    `validate:"required"`
	Status          string    `validate:"required,oneof=extracted needs_review reviewed"`
	Warnings        []string  `validate:"dive,max=255"`
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time `validate:"required"`
}

// NewDocument builds a document from the fields extracted out of rawText.
func NewDocument(userID, source, rawText string, f fields.Fields) *Document {
	now := time.Now().UTC()
	d := &Document{
		ID:              uuid.NewString(),
		UserID:          userID,
		Source:          source,
		Country:         f.Country,
		DocumentType:    string(f.DocumentType),
		IDMethod:        string(fields.MethodNone),
		GivenNames:      f.GivenNames,
		Surnames:        f.Surnames,
		FullName:        f.FullName,
		BirthDate:       dateValueOf(f.BirthDate),
		ExpiryDate:      dateValueOf(f.ExpiryDate),
		IssueDate:       dateValueOf(f.IssueDate),
		Sex:             f.Sex,
		Nationality:     f.Nationality,
		RawText:         rawText,
		Warnings:        f.Warnings,
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}
	if f.ID != nil {
		d.IDKind = f.ID.Kind
		d.IDNumber = f.ID.Value
		d.IDMethod = string(f.ID.Method)
		d.IDConfidence = f.ID.Confidence
	}
	d.Status = d.computeStatus(StatusExtracted)
	return d
}

// Date returns the date stored under one of the Field* names.
func (d *Document) Date(field string) (*DateValue, error) {
	switch field {
	case FieldBirthDate:
		return &d.BirthDate, nil
	case FieldExpiryDate:
		return &d.ExpiryDate, nil
	case FieldIssueDate:
		return &d.IssueDate, nil
	}
	return nil, fmt.Errorf("%w: unknown date field %q", ErrInvalidArgument, field)
}

// ResolveDate re-reads a stored date with the format chosen by a reviewer.
// The printed value is kept; only its reading changes. Once nothing is left
// to settle the document is marked reviewed.
func (d *Document) ResolveDate(field string, format dates.Format) error {
	slot, err := d.Date(field)
	if err != nil {
		return err
	}
	if !slot.Present() {
		return fmt.Errorf("%w: %s was not found on the document", ErrInvalidArgument, field)
	}

	res := dates.ParseAs(slot.Raw, format)
	if !res.Resolved() {
		return fmt.Errorf("%w: %q cannot be read as %s", ErrInvalidArgument, slot.Raw, format)
	}

	*slot = dateValueOf(&res)
	d.Status = d.computeStatus(StatusReviewed)
	d.DateTimeUpdated = time.Now().UTC()
	return nil
}

// NeedsReview reports whether the identity number is missing or a date is
// unresolved.
func (d *Document) NeedsReview() bool {
	if d.IDNumber == "" {
		return true
	}
	return d.BirthDate.Unresolved() || d.ExpiryDate.Unresolved() || d.IssueDate.Unresolved()
}

func (d *Document) computeStatus(settled string) string {
	if d.NeedsReview() {
		return StatusNeedsReview
	}
	return settled
}

// Validate for validating Document struct
func (d *Document) Validate() error {
	return validators.Struct(d)
}
