// Package book holds the in-memory address book: an insertion-ordered set of
// contact records keyed by name, bound to a RecordStorage for load and save.
package book

import (
	"context"
	"iter"
	"strings"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
)

// AddressBook maps contact names to records. Every key equals the name of
// its record and iteration follows first-insertion order.
//
// An AddressBook is owned by a single caller and is not safe for concurrent use.
type AddressBook struct {
	storage repository.RecordStorage
	order   []string
	records map[string]*entity.Record
}

// New binds an address book to storage and loads whatever it holds.
func New(ctx context.Context, storage repository.RecordStorage) (*AddressBook, error) {
	book := &AddressBook{
		storage: storage,
		records: make(map[string]*entity.Record),
	}

	if err := book.LoadFromStorage(ctx); err != nil {
		return nil, err
	}

	return book, nil
}

// AddRecord inserts record, replacing any record stored under the same name.
// A replaced record keeps its position in iteration order.
func (b *AddressBook) AddRecord(record *entity.Record) {
	key := record.Name.Value()
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = record
}

// ChangeRecord replaces the record stored under record's name. It fails with
// a NotFoundError when no such record exists.
func (b *AddressBook) ChangeRecord(record *entity.Record) error {
	key := record.Name.Value()
	if _, exists := b.records[key]; !exists {
		return domainerrors.NewNotFoundError(
			domainerrors.ErrContactNotFound,
			key,
			"This name "+key+" is not found. Please input correct name",
		)
	}
	b.records[key] = record

	return nil
}

// Get returns the record stored under name.
func (b *AddressBook) Get(name string) (*entity.Record, bool) {
	record, ok := b.records[name]

	return record, ok
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.order)
}

// Records returns the records in iteration order.
func (b *AddressBook) Records() []*entity.Record {
	records := make([]*entity.Record, 0, len(b.order))
	for _, key := range b.order {
		records = append(records, b.records[key])
	}

	return records
}

// All yields every record in iteration order.
func (b *AddressBook) All() iter.Seq[*entity.Record] {
	return func(yield func(*entity.Record) bool) {
		for _, key := range b.order {
			if !yield(b.records[key]) {
				return
			}
		}
	}
}

// Search yields, in iteration order, every record whose name or any phone
// contains term. Matching is case-sensitive and each record is yielded once.
func (b *AddressBook) Search(term string) iter.Seq[*entity.Record] {
	return func(yield func(*entity.Record) bool) {
		for record := range b.All() {
			if matches(record, term) && !yield(record) {
				return
			}
		}
	}
}

func matches(record *entity.Record, term string) bool {
	if strings.Contains(record.Name.Value(), term) {
		return true
	}
	for _, phone := range record.Phones {
		if strings.Contains(phone.String(), term) {
			return true
		}
	}

	return false
}

// Paginate yields the records in pages of pageSize. Only the last page may be
// shorter, and an empty book yields a single empty page. A non-positive
// pageSize puts every record on one page.
func (b *AddressBook) Paginate(pageSize int) iter.Seq[[]*entity.Record] {
	return func(yield func([]*entity.Record) bool) {
		size := pageSize
		if size <= 0 {
			size = max(len(b.order), 1)
		}

		page := make([]*entity.Record, 0, size)
		for record := range b.All() {
			page = append(page, record)
			if len(page) == size {
				if !yield(page) {
					return
				}
				page = make([]*entity.Record, 0, size)
			}
		}

		// The trailing partial page; empty only when the book is empty.
		if len(page) > 0 || len(b.order) == 0 {
			yield(page)
		}
	}
}

// WriteToStorage overwrites the bound storage with every record.
func (b *AddressBook) WriteToStorage(ctx context.Context) error {
	if err := b.storage.Save(ctx, b.Records()); err != nil {
		return wrapStorageError(err, "write "+b.storage.Location())
	}

	return nil
}

// LoadFromStorage replaces the book's content with the bound storage's content.
// The book is left untouched when loading fails.
func (b *AddressBook) LoadFromStorage(ctx context.Context) error {
	loaded, err := b.storage.Load(ctx)
	if err != nil {
		return wrapStorageError(err, "load "+b.storage.Location())
	}

	order := make([]string, 0, len(loaded))
	records := make(map[string]*entity.Record, len(loaded))
	for _, record := range loaded {
		key := record.Name.Value()
		if _, exists := records[key]; !exists {
			order = append(order, key)
		}
		records[key] = record
	}
	b.order, b.records = order, records

	return nil
}

// Location reports where the book is persisted.
func (b *AddressBook) Location() string {
	return b.storage.Location()
}

func wrapStorageError(err error, details string) error {
	if errors.Is(err, domainerrors.ErrStorageFailed) {
		return err
	}

	return domainerrors.NewStorageError(err, details)
}
