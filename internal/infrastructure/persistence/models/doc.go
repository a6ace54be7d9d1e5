// Package models contains the GORM models of the document store. They are
// kept apart from the domain entities and converted with ToDomain and
// FromDomain, so column layout changes never leak into the domain.
package models
