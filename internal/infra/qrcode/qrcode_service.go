package qrcode

import (
	"fmt"
	"strings"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	vcardBegin   = "BEGIN:VCARD"
	vcardVersion = "VERSION:3.0"
	vcardEnd     = "END:VCARD"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	emailRule            entity.EmailRule
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string, emailRule entity.EmailRule) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if emailRule == nil {
		emailRule = entity.ConventionalEmail
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		emailRule:            emailRule,
	}
}

// GenerateContactQR generates a vCard QR code for a contact
func (s *qrcodeService) GenerateContactQR(record *entity.Record) ([]byte, error) {
	// Generate QR code
	qrCode, err := qrcode.New(EncodeVCard(record), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseContactQR parses vCard data and returns the contact it describes
func (s *qrcodeService) ParseContactQR(payload string) (*entity.Record, error) {
	lines := strings.Split(strings.ReplaceAll(strings.TrimSpace(payload), "\r\n", "\n"), "\n")
	if len(lines) < 2 || lines[0] != vcardBegin || lines[len(lines)-1] != vcardEnd {
		return nil, fmt.Errorf("invalid vCard payload")
	}

	var (
		name *entity.Name
		opts []entity.RecordOption
	)

	for _, line := range lines[1 : len(lines)-1] {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("invalid vCard line: %q", line)
		}

		switch key {
		case "FN":
			n, err := entity.NewName(value)
			if err != nil {
				return nil, fmt.Errorf("failed to parse name: %w", err)
			}
			name = &n
		case "TEL":
			phone, err := entity.NewPhone(value)
			if err != nil {
				return nil, fmt.Errorf("failed to parse phone: %w", err)
			}
			opts = append(opts, entity.WithPhone(phone))
		case "BDAY":
			birthday, err := entity.ParseBirthday(value)
			if err != nil {
				return nil, fmt.Errorf("failed to parse birthday: %w", err)
			}
			opts = append(opts, entity.WithBirthday(birthday))
		case "EMAIL":
			email, err := entity.NewEmailWithRule(value, s.emailRule)
			if err != nil {
				return nil, fmt.Errorf("failed to parse email: %w", err)
			}
			opts = append(opts, entity.WithEmail(email))
		case "ADR":
			address, err := entity.NewAddress(unescapeVCard(strings.TrimSuffix(strings.TrimPrefix(value, ";;"), ";;;;")))
			if err != nil {
				return nil, fmt.Errorf("failed to parse address: %w", err)
			}
			opts = append(opts, entity.WithAddress(address))
		}
	}

	if name == nil {
		return nil, fmt.Errorf("vCard has no FN line")
	}

	return entity.NewRecord(*name, opts...), nil
}

// EncodeVCard renders record as a vCard 3.0 document.
func EncodeVCard(record *entity.Record) string {
	lines := []string{vcardBegin, vcardVersion, "FN:" + record.Name.String()}
	for _, phone := range record.Phones {
		lines = append(lines, "TEL:"+phone.String())
	}
	if record.Birthday != nil {
		lines = append(lines, "BDAY:"+record.Birthday.String())
	}
	if record.Email != nil {
		lines = append(lines, "EMAIL:"+record.Email.String())
	}
	if record.Address != nil {
		lines = append(lines, "ADR:;;"+escapeVCard(record.Address.String())+";;;;")
	}
	lines = append(lines, vcardEnd)

	return strings.Join(lines, "\r\n")
}

var (
	vcardEscaper   = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)
	vcardUnescaper = strings.NewReplacer(`\\`, `\`, `\;`, ";", `\,`, ",", `\n`, "\n")
)

func escapeVCard(value string) string {
	return vcardEscaper.Replace(value)
}

func unescapeVCard(value string) string {
	return vcardUnescaper.Replace(value)
}
