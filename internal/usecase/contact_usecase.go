// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// AddContactInput defines the data required to add a contact.
// Birthday, Email and Address are optional; empty means absent.
type AddContactInput struct {
	Name     string
	Phone    string
	Birthday string
	Email    string
	Address  string
}

// ChangePhoneInput defines the data required to replace one phone of a contact.
type ChangePhoneInput struct {
	Name     string
	OldPhone string
	NewPhone string
}

// ContactUsecase defines the interface for contact-related operations.
// Every method returns the text shown to the user on success.
type ContactUsecase interface {
	Add(ctx context.Context, input *AddContactInput) (string, error)
	AddPhone(ctx context.Context, name, phone string) (string, error)
	RemovePhone(ctx context.Context, name, phone string) (string, error)
	ChangePhone(ctx context.Context, input *ChangePhoneInput) (string, error)
	Change(ctx context.Context, name, phone string) (string, error)
	Phone(ctx context.Context, name string) (string, error)
	DaysToBirthday(ctx context.Context, name string) (string, error)
	Search(ctx context.Context, term string) (string, error)
	ShowAll(ctx context.Context) (string, error)
	Save(ctx context.Context) (string, error)
	ExportQR(ctx context.Context, name string) (string, error)
	ImportCard(ctx context.Context, path string) (string, error)
}
