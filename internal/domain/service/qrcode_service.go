package service

import (
	"contacts/internal/domain/entity"
)

// QRCodeService defines the interface for contact QR code generation and parsing services
type QRCodeService interface {
	// GenerateContactQR encodes record as a vCard and renders it as a PNG QR code
	GenerateContactQR(record *entity.Record) ([]byte, error)

	// ParseContactQR parses the vCard payload of a contact QR code, or a saved
	// vCard file, back into a record
	ParseContactQR(payload string) (*entity.Record, error)
}
