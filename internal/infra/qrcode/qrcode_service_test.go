package qrcode

import (
	"testing"

	"contacts/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(t *testing.T) *entity.Record {
	t.Helper()

	name, err := entity.NewName("Mia")
	require.NoError(t, err)
	phone, err := entity.NewPhone("12345")
	require.NoError(t, err)
	birthday, err := entity.ParseBirthday("1990-01-02")
	require.NoError(t, err)
	email, err := entity.NewEmail("mia@example.com")
	require.NoError(t, err)
	address, err := entity.NewAddress("Kyiv; Main st, 1")
	require.NoError(t, err)

	return entity.NewRecord(name,
		entity.WithPhone(phone),
		entity.WithBirthday(birthday),
		entity.WithEmail(email),
		entity.WithAddress(address),
	)
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, nil)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateContactQR(t *testing.T) {
	service := NewQRCodeService(256, "M", nil)

	qrBytes, err := service.GenerateContactQR(testRecord(t))
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestEncodeVCard(t *testing.T) {
	assert.Equal(t,
		"BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Mia\r\nTEL:12345\r\nBDAY:1990-01-02\r\n"+
			"EMAIL:mia@example.com\r\nADR:;;Kyiv\\; Main st\\, 1;;;;\r\nEND:VCARD",
		EncodeVCard(testRecord(t)),
	)
}

func TestQRCodeService_ParseContactQR_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M", nil)
	original := testRecord(t)

	parsed, err := service.ParseContactQR(EncodeVCard(original))
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed))
}

func TestQRCodeService_ParseContactQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M", nil)

	tests := []struct {
		name    string
		payload string
	}{
		{"Not a vCard", `{"type":"contact"}`},
		{"Missing name", "BEGIN:VCARD\nVERSION:3.0\nTEL:1\nEND:VCARD"},
		{"Invalid phone", "BEGIN:VCARD\nFN:Mia\nTEL:12a\nEND:VCARD"},
		{"Malformed line", "BEGIN:VCARD\nFN Mia\nEND:VCARD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseContactQR(tt.payload)
			assert.Error(t, err)
		})
	}
}
