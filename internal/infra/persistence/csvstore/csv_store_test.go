package csvstore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecord(t *testing.T, name string, phones ...string) *entity.Record {
	t.Helper()

	n, err := entity.NewName(name)
	require.NoError(t, err)

	record := entity.NewRecord(n)
	for _, value := range phones {
		phone, err := entity.NewPhone(value)
		require.NoError(t, err)
		record.AddPhone(phone)
	}

	return record
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "addressbook.csv")
	store := New(path)

	original := mustRecord(t, "Mia", "12345")
	require.NoError(t, store.Save(ctx, []*entity.Record{original}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, original.Equal(loaded[0]))
	assert.Nil(t, loaded[0].Birthday)
	assert.Nil(t, loaded[0].Email)
	assert.Nil(t, loaded[0].Address)
}

func TestStore_SaveLoad_AllFields(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "addressbook.csv")
	store := New(path)

	birthday, err := entity.ParseBirthday("1990-01-02")
	require.NoError(t, err)
	email, err := entity.NewEmail("leo@example.com")
	require.NoError(t, err)
	address, err := entity.NewAddress(`Kyiv, "Central" st. 1`)
	require.NoError(t, err)

	full := mustRecord(t, "Leo", "111", "222")
	full.Birthday = &birthday
	full.Email = &email
	full.Address = &address
	bare := mustRecord(t, "Zoe")

	require.NoError(t, store.Save(ctx, []*entity.Record{full, bare}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Name,Phones,Birthday,Email,Address\n"+
			`Leo,"[111, 222]",1990-01-02,leo@example.com,"Kyiv, ""Central"" st. 1"`+"\n"+
			"Zoe,[],,,\n",
		string(content),
	)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.True(t, full.Equal(loaded[0]))
	assert.True(t, bare.Equal(loaded[1]))
	assert.Empty(t, loaded[1].Phones)
}

func TestStore_Load_MissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "absent.csv"))

	records, err := store.Load(context.Background())
	require.NoError(t, err) // Should not error, just return empty
	assert.Empty(t, records)
}

func TestStore_Save_Overwrites(t *testing.T) {
	ctx := context.Background()
	store := New(filepath.Join(t.TempDir(), "addressbook.csv"))

	require.NoError(t, store.Save(ctx, []*entity.Record{mustRecord(t, "Mia", "1"), mustRecord(t, "Leo", "2")}))
	require.NoError(t, store.Save(ctx, []*entity.Record{mustRecord(t, "Zoe", "3")}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Zoe", loaded[0].Name.String())
}

func TestStore_Save_Failure(t *testing.T) {
	dir := t.TempDir()
	store := New(dir) // a directory cannot be created as a file

	err := store.Save(context.Background(), nil)
	assert.Error(t, err)
}

func TestStore_Decode_ColumnOrderFromHeader(t *testing.T) {
	content := "Email,Address,Name,Birthday,Phones\n,,Mia,,\"[1, 2]\"\n"

	records, err := New("inline").Decode(context.Background(), strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "[1, 2]", records[0].PhonesString())
}

func TestStore_Decode_EmptyInput(t *testing.T) {
	records, err := New("inline").Decode(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_Decode_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "missing column",
			content: "Name,Phones\nMia,[1]\n",
			want:    `missing column "Birthday"`,
		},
		{
			name:    "short row",
			content: "Name,Phones,Birthday,Email,Address\nMia,[1]\n",
			want:    "expected 5 columns",
		},
		{
			name:    "invalid phone",
			content: "Name,Phones,Birthday,Email,Address\nMia,[1],,,\nLeo,[12a],,,\n",
			want:    "invalid record at line 3",
		},
		{
			name:    "unbracketed phones",
			content: "Name,Phones,Birthday,Email,Address\nMia,123,,,\n",
			want:    "expected [..]",
		},
		{
			name:    "invalid birthday",
			content: "Name,Phones,Birthday,Email,Address\nMia,[1],02.01.1990,,\n",
			want:    "YYYY-MM-DD",
		},
		{
			name:    "wide header, short row",
			content: "Id,Name,Phones,Birthday,Email,Address\n1,Mia,[123],,\n",
			want:    "invalid csv format at line 2: expected 6 columns, got 5",
		},
		{
			name:    "line after multiline address",
			content: "Name,Phones,Birthday,Email,Address\nMia,[1],,,\"Main st\n1\"\nLeo,[12a],,,\n",
			want:    "invalid record at line 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = New("inline").Decode(context.Background(), strings.NewReader(tt.content))
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStore_Decode_EmailRule(t *testing.T) {
	content := "Name,Phones,Birthday,Email,Address\nMia,[1],,mia'@'example.com,\n"

	_, err := New("inline").Decode(context.Background(), strings.NewReader(content))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	records, err := New("inline", WithEmailRule(entity.LegacyEmail)).Decode(context.Background(), strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "mia'@'example.com", records[0].Email.String())
}

func TestParsePhones(t *testing.T) {
	phones, err := ParsePhones("[123, 456]")
	require.NoError(t, err)
	require.Len(t, phones, 2)
	assert.Equal(t, "456", phones[1].String())

	phones, err = ParsePhones("[]")
	require.NoError(t, err)
	assert.Empty(t, phones)

	_, err = ParsePhones("[123,456]")
	assert.Error(t, err, "phones are split on comma-space only")
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(context.Background(), &buf, nil))
	assert.Equal(t, "Name,Phones,Birthday,Email,Address\n", buf.String())
}

func TestStore_Decode_ExtraColumns(t *testing.T) {
	content := "Id,Address,Email,Birthday,Phones,Name\n7,Kyiv,,1990-01-02,\"[1, 2]\",Mia\n"

	records, err := New("inline").Decode(context.Background(), strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Mia", records[0].Name.String())
	assert.Equal(t, "[1, 2]", records[0].PhonesString())
	require.NotNil(t, records[0].Address)
	assert.Equal(t, "Kyiv", records[0].Address.String())
}
