// Package csvstore persists address book records to a CSV file.
//
// The file carries a header row followed by one row per record:
//
//	Name,Phones,Birthday,Email,Address
//	Mia,"[123, 456]",1990-01-02,mia@example.com,
//
// Phones is the bracketed, comma-space joined rendering of the phone list.
// Empty Birthday, Email and Address cells mean the field is absent.
package csvstore

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"

	"github.com/pkg/errors"
)

// Column names of the header row, in write order.
const (
	ColumnName     = "Name"
	ColumnPhones   = "Phones"
	ColumnBirthday = "Birthday"
	ColumnEmail    = "Email"
	ColumnAddress  = "Address"
)

var header = []string{ColumnName, ColumnPhones, ColumnBirthday, ColumnEmail, ColumnAddress}

// Store reads and writes records from a single CSV file
type Store struct {
	path      string
	emailRule entity.EmailRule
}

// Option configures a Store
type Option func(*Store)

// WithEmailRule sets the rule used to validate emails read from the file.
func WithEmailRule(rule entity.EmailRule) Option {
	return func(s *Store) {
		s.emailRule = rule
	}
}

// New creates a CSV store for the file at path
func New(path string, opts ...Option) *Store {
	store := &Store{path: path, emailRule: entity.ConventionalEmail}
	for _, opt := range opts {
		opt(store)
	}

	return store
}

var _ repository.RecordStorage = (*Store)(nil)

// Location returns the file path
func (s *Store) Location() string {
	return s.path
}

// Load reads every record from the file. A missing file yields no records.
func (s *Store) Load(ctx context.Context) ([]*entity.Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*entity.Record{}, nil
		}

		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return s.Decode(ctx, file)
}

// Decode reads records from CSV content with a header row.
func (s *Store) Decode(ctx context.Context, r io.Reader) ([]*entity.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	head, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []*entity.Record{}, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	columns, err := indexColumns(head)
	if err != nil {
		return nil, err
	}

	var records []*entity.Record

	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		// Physical line of the row start; quoted cells may span lines.
		lineNum, _ := reader.FieldPos(0)

		if len(row) < len(head) {
			return nil, errors.Errorf("invalid csv format at line %d: expected %d columns, got %d", lineNum, len(head), len(row))
		}

		record, parseErr := s.parseRecord(row, columns)
		if parseErr != nil {
			return nil, errors.Wrapf(parseErr, "invalid record at line %d", lineNum)
		}

		records = append(records, record)
	}

	if records == nil {
		records = []*entity.Record{}
	}

	return records, nil
}

// Save rewrites the whole file with records.
func (s *Store) Save(ctx context.Context, records []*entity.Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WithStack(err)
		}
	}

	file, err := os.Create(s.path)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := Encode(ctx, file, records); err != nil {
		file.Close()

		return err
	}

	return errors.WithStack(file.Close())
}

// Encode writes the header and one row per record.
func Encode(ctx context.Context, w io.Writer, records []*entity.Record) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return errors.WithStack(err)
	}

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}
		if err := writer.Write(formatRecord(record)); err != nil {
			return errors.WithStack(err)
		}
	}

	writer.Flush()

	return errors.WithStack(writer.Error())
}

func formatRecord(record *entity.Record) []string {
	row := []string{record.Name.String(), record.PhonesString(), "", "", ""}
	if record.Birthday != nil {
		row[2] = record.Birthday.String()
	}
	if record.Email != nil {
		row[3] = record.Email.String()
	}
	if record.Address != nil {
		row[4] = record.Address.String()
	}

	return row
}

// indexColumns maps every expected column to its position in the header.
func indexColumns(head []string) (map[string]int, error) {
	columns := make(map[string]int, len(head))
	for i, name := range head {
		columns[strings.TrimSpace(name)] = i
	}

	for _, name := range header {
		if _, ok := columns[name]; !ok {
			return nil, errors.Errorf("invalid csv header: missing column %q", name)
		}
	}

	return columns, nil
}

func (s *Store) parseRecord(row []string, columns map[string]int) (*entity.Record, error) {
	name, err := entity.NewName(row[columns[ColumnName]])
	if err != nil {
		return nil, err
	}

	phones, err := ParsePhones(row[columns[ColumnPhones]])
	if err != nil {
		return nil, err
	}

	opts := []entity.RecordOption{entity.WithPhones(phones...)}

	if value := row[columns[ColumnBirthday]]; value != "" {
		birthday, err := entity.ParseBirthday(value)
		if err != nil {
			return nil, err
		}
		opts = append(opts, entity.WithBirthday(birthday))
	}

	if value := row[columns[ColumnEmail]]; value != "" {
		email, err := entity.NewEmailWithRule(value, s.emailRule)
		if err != nil {
			return nil, err
		}
		opts = append(opts, entity.WithEmail(email))
	}

	if value := row[columns[ColumnAddress]]; value != "" {
		address, err := entity.NewAddress(value)
		if err != nil {
			return nil, err
		}
		opts = append(opts, entity.WithAddress(address))
	}

	return entity.NewRecord(name, opts...), nil
}

// ParsePhones decodes the "[123, 456]" rendering written by Save.
// "[]" decodes to no phones.
func ParsePhones(value string) ([]entity.Phone, error) {
	if len(value) < 2 || value[0] != '[' || value[len(value)-1] != ']' {
		return nil, errors.Errorf("invalid phones cell %q: expected [..]", value)
	}

	inner := value[1 : len(value)-1]
	if inner == "" {
		return []entity.Phone{}, nil
	}

	parts := strings.Split(inner, ", ")
	phones := make([]entity.Phone, 0, len(parts))
	for _, part := range parts {
		phone, err := entity.NewPhone(part)
		if err != nil {
			return nil, err
		}
		phones = append(phones, phone)
	}

	return phones, nil
}
