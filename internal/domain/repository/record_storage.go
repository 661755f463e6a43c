// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"contacts/internal/domain/entity"
)

// RecordStorage defines the persistence contract of an address book.
// The book is always read and written as a whole.
type RecordStorage interface {
	// Load returns every stored record in file order.
	// A storage location that does not exist yet yields no records and no error.
	Load(ctx context.Context) ([]*entity.Record, error)

	// Save replaces the stored content with records, in the given order.
	Save(ctx context.Context, records []*entity.Record) error

	// Location describes where the records live, e.g. a file path.
	Location() string
}
