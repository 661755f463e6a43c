package entity

import (
	"strings"
)

// Record is one contact. Its name is the identity key inside an address book
// and never changes; renaming means replacing the record.
type Record struct {
	Name     Name      // Required contact name.
	Phones   []Phone   // Phones in insertion order. Duplicates are allowed.
	Birthday *Birthday // Nil when unknown.
	Email    *Email    // Nil when unknown.
	Address  *Address  // Nil when unknown.
}

// RecordOption sets an optional field on a new Record.
type RecordOption func(*Record)

// WithPhone appends a phone.
func WithPhone(phone Phone) RecordOption {
	return func(r *Record) {
		r.Phones = append(r.Phones, phone)
	}
}

// WithPhones appends phones in order.
func WithPhones(phones ...Phone) RecordOption {
	return func(r *Record) {
		r.Phones = append(r.Phones, phones...)
	}
}

func WithBirthday(birthday Birthday) RecordOption {
	return func(r *Record) {
		r.Birthday = &birthday
	}
}

func WithEmail(email Email) RecordOption {
	return func(r *Record) {
		r.Email = &email
	}
}

func WithAddress(address Address) RecordOption {
	return func(r *Record) {
		r.Address = &address
	}
}

// NewRecord creates a record for name with the given optional fields.
func NewRecord(name Name, opts ...RecordOption) *Record {
	record := &Record{Name: name, Phones: []Phone{}}
	for _, opt := range opts {
		opt(record)
	}

	return record
}

// AddPhone appends phone, even if an equal phone is already present.
func (r *Record) AddPhone(phone Phone) {
	r.Phones = append(r.Phones, phone)
}

// RemovePhone removes every phone equal to phone.
func (r *Record) RemovePhone(phone Phone) {
	kept := r.Phones[:0]
	for _, p := range r.Phones {
		if !p.Equal(phone) {
			kept = append(kept, p)
		}
	}
	r.Phones = kept
}

// ChangePhone replaces the first phone equal to old with replacement and
// reports whether a replacement happened.
func (r *Record) ChangePhone(old, replacement Phone) bool {
	for i, p := range r.Phones {
		if p.Equal(old) {
			r.Phones[i] = replacement

			return true
		}
	}

	return false
}

// HasPhone reports whether an equal phone is present.
func (r *Record) HasPhone(phone Phone) bool {
	for _, p := range r.Phones {
		if p.Equal(phone) {
			return true
		}
	}

	return false
}

// PhonesString renders the phones as "[123, 456]".
func (r *Record) PhonesString() string {
	values := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		values[i] = p.String()
	}

	return "[" + strings.Join(values, ", ") + "]"
}

// Equal reports whether both records hold equal values in every field.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if !r.Name.Equal(other.Name) || len(r.Phones) != len(other.Phones) {
		return false
	}
	for i := range r.Phones {
		if !r.Phones[i].Equal(other.Phones[i]) {
			return false
		}
	}

	return equalOptional(r.Birthday, other.Birthday, Birthday.Equal) &&
		equalOptional(r.Email, other.Email, Email.Equal) &&
		equalOptional(r.Address, other.Address, Address.Equal)
}

func equalOptional[T any](a, b *T, eq func(T, T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}

	return eq(*a, *b)
}

func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name.String())
	sb.WriteString(r.PhonesString())
	if r.Birthday != nil {
		sb.WriteString(" ")
		sb.WriteString(r.Birthday.String())
	}
	if r.Email != nil {
		sb.WriteString(" ")
		sb.WriteString(r.Email.String())
	}
	if r.Address != nil {
		sb.WriteString(" ")
		sb.WriteString(r.Address.String())
	}

	return sb.String()
}
