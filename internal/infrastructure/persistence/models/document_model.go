package models

import (
	"strings"
	"time"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/internal/domain/documents"
)

// warningSeparator joins warnings into a single column.
const warningSeparator = "\n"

// DateColumns stores one document date; it is embedded with a column prefix.
type DateColumns struct {
	Raw        string  `gorm:"type:varchar(64)"`
	Value      string  `gorm:"type:varchar(10)"`
	Format     string  `gorm:"type:varchar(16)"`
	Confidence float64 `gorm:"not null;default:0"`
}

func (c DateColumns) toDomain() documents.DateValue {
	return documents.DateValue{Raw: c.Raw, Value: c.Value, Format: c.Format, Confidence: c.Confidence}
}

func dateColumnsOf(v documents.DateValue) DateColumns {
	return DateColumns{Raw: v.Raw, Value: v.Value, Format: v.Format, Confidence: v.Confidence}
}

// DocumentModel is the GORM database model for documents (infrastructure concern)
type DocumentModel struct {
	ID              string      `gorm:"primaryKey;type:uuid"`
	UserID          string      `gorm:"not null;index;type:varchar(255)"`
	Source          string      `gorm:"not null;type:varchar(16)"`
	Country         string      `gorm:"index;type:varchar(64)"`
	DocumentType    string      `gorm:"not null;index;type:varchar(32)"`
	IDKind          string      `gorm:"type:varchar(32)"`
	IDNumber        string      `gorm:"index;type:varchar(64)"`
	IDMethod        string      `gorm:"type:varchar(16)"`
	IDConfidence    float64     `gorm:"not null;default:0"`
	GivenNames      string      `gorm:"type:varchar(255)"`
	Surnames        string      `gorm:"type:varchar(255)"`
	FullName        string      `gorm:"type:varchar(512)"`
	BirthDate       DateColumns `gorm:"embedded;embeddedPrefix:birth_date_"`
	ExpiryDate      DateColumns `gorm:"embedded;embeddedPrefix:expiry_date_"`
	IssueDate       DateColumns `gorm:"embedded;embeddedPrefix:issue_date_"`
	Sex             string      `gorm:"type:varchar(1)"`
	Nationality     string      `gorm:"type:varchar(64)"`
	RawText         string      `gorm:"not null;type:text"`
	Status          string      `gorm:"not null;index;type:varchar(16)"`
	Warnings        string      `gorm:"type:text"`
	DateTimeCreated time.Time   `gorm:"not null;index"`
	DateTimeUpdated time.Time   `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (DocumentModel) TableName() string {
	return "documents"
}

// ToDomain converts GORM model to domain entity
func (m *DocumentModel) ToDomain() *documents.Document {
	var warnings []string
	if m.Warnings != "" {
		warnings = strings.Split(m.Warnings, warningSeparator)
	}

	return &documents.Document{
		ID:              m.ID,
		UserID:          m.UserID,
		Source:          m.Source,
		Country:         m.Country,
		DocumentType:    m.DocumentType,
		IDKind:          m.IDKind,
		IDNumber:        m.IDNumber,
		IDMethod:        m.IDMethod,
		IDConfidence:    m.IDConfidence,
		GivenNames:      m.GivenNames,
		Surnames:        m.Surnames,
		FullName:        m.FullName,
		BirthDate:       m.BirthDate.toDomain(),
		ExpiryDate:      m.ExpiryDate.toDomain(),
		IssueDate:       m.IssueDate.toDomain(),
		Sex:             m.Sex,
		Nationality:     m.Nationality,
		RawText:         m.RawText,
		Status:          m.Status,
		Warnings:        warnings,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DocumentModel) FromDomain(d *documents.Document) {
	m.ID = d.ID
	m.UserID = d.UserID
	m.Source = d.Source
	m.Country = d.Country
	m.DocumentType = d.DocumentType
	m.IDKind = d.IDKind
	m.IDNumber = d.IDNumber
	m.IDMethod = d.IDMethod
	m.IDConfidence = d.IDConfidence
	m.GivenNames = d.GivenNames
	m.Surnames = d.Surnames
	m.FullName = d.FullName
	m.BirthDate = dateColumnsOf(d.BirthDate)
	m.ExpiryDate = dateColumnsOf(d.ExpiryDate)
	m.IssueDate = dateColumnsOf(d.IssueDate)
	m.Sex = d.Sex
	m.Nationality = d.Nationality
	m.RawText = d.RawText
	m.Status = d.Status
	m.Warnings = strings.Join(d.Warnings, warningSeparator)
	m.DateTimeCreated = d.DateTimeCreated
	m.DateTimeUpdated = d.DateTimeUpdated
}
