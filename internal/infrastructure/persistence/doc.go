// Package persistence provides the GORM implementation of the document
// repository together with the SQLite and PostgreSQL connection setup.
package persistence
