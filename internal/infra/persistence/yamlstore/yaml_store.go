// Package yamlstore persists address book records as a YAML document.
package yamlstore

import (
	"context"
	"os"
	"path/filepath"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// contactModel is the on-disk shape of a record.
type contactModel struct {
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones"`
	Birthday string   `yaml:"birthday,omitempty"`
	Email    string   `yaml:"email,omitempty"`
	Address  string   `yaml:"address,omitempty"`
}

type documentModel struct {
	Contacts []contactModel `yaml:"contacts"`
}

// Store reads and writes records from a single YAML file
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

// New creates a YAML store for the file at path
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
func (s *Store) Load(_ context.Context) ([]*entity.Record, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*entity.Record{}, nil
		}

		return nil, errors.WithStack(err)
	}

	var doc documentModel
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Wrapf(err, "decode %s", s.path)
	}

	records := make([]*entity.Record, 0, len(doc.Contacts))
	for i, model := range doc.Contacts {
		record, err := s.toEntity(model)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid contact #%d", i+1)
		}
		records = append(records, record)
	}

	return records, nil
}

// Save rewrites the whole file with records.
func (s *Store) Save(_ context.Context, records []*entity.Record) error {
	doc := documentModel{Contacts: make([]contactModel, 0, len(records))}
	for _, record := range records {
		doc.Contacts = append(doc.Contacts, toModel(record))
	}

	content, err := yaml.Marshal(&doc)
	if err != nil {
		return errors.WithStack(err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WithStack(err)
		}
	}

	return errors.WithStack(os.WriteFile(s.path, content, 0o644))
}

func toModel(record *entity.Record) contactModel {
	model := contactModel{
		Name:   record.Name.String(),
		Phones: make([]string, 0, len(record.Phones)),
	}
	for _, phone := range record.Phones {
		model.Phones = append(model.Phones, phone.String())
	}
	if record.Birthday != nil {
		model.Birthday = record.Birthday.String()
	}
	if record.Email != nil {
		model.Email = record.Email.String()
	}
	if record.Address != nil {
		model.Address = record.Address.String()
	}

	return model
}

func (s *Store) toEntity(model contactModel) (*entity.Record, error) {
	name, err := entity.NewName(model.Name)
	if err != nil {
		return nil, err
	}

	record := entity.NewRecord(name)
	for _, value := range model.Phones {
		phone, err := entity.NewPhone(value)
		if err != nil {
			return nil, err
		}
		record.AddPhone(phone)
	}

	if model.Birthday != "" {
		birthday, err := entity.ParseBirthday(model.Birthday)
		if err != nil {
			return nil, err
		}
		record.Birthday = &birthday
	}

	if model.Email != "" {
		email, err := entity.NewEmailWithRule(model.Email, s.emailRule)
		if err != nil {
			return nil, err
		}
		record.Email = &email
	}

	if model.Address != "" {
		address, err := entity.NewAddress(model.Address)
		if err != nil {
			return nil, err
		}
		record.Address = &address
	}

	return record, nil
}
