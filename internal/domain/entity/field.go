// Package entity contains the core business objects of the project:
// validated contact fields and the contact record built from them.
package entity

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	domainerrors "contacts/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// FieldKind identifies one of the field variants.
type FieldKind string

const (
	FieldName     FieldKind = "name"
	FieldPhone    FieldKind = "phone"
	FieldBirthday FieldKind = "birthday"
	FieldEmail    FieldKind = "email"
	FieldAddress  FieldKind = "address"
)

const (
	// BirthdayLayout is the only accepted textual form of a birthday.
	BirthdayLayout = "2006-01-02"

	// AddressMaxLen is the exclusive upper bound on address length in characters.
	AddressMaxLen = 256
)

// Field is implemented by every validated contact field.
type Field interface {
	Kind() FieldKind
	String() string
}

// Name is a contact name made of letters only.
type Name struct {
	value string
}

// NewName validates value and returns a Name.
func NewName(value string) (Name, error) {
	if value == "" || strings.IndexFunc(value, func(r rune) bool { return !unicode.IsLetter(r) }) >= 0 {
		return Name{}, domainerrors.NewValidationError(string(FieldName), value, "Please enter correct name")
	}

	return Name{value: value}, nil
}

func (n Name) Kind() FieldKind       { return FieldName }
func (n Name) String() string        { return n.value }
func (n Name) Value() string         { return n.value }
func (n Name) Equal(other Name) bool { return n.value == other.value }
func (n Name) IsZero() bool          { return n.value == "" }

// Phone is a phone number made of digits only.
type Phone struct {
	value string
}

// NewPhone validates value and returns a Phone.
func NewPhone(value string) (Phone, error) {
	if value == "" || strings.IndexFunc(value, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return Phone{}, domainerrors.NewValidationError(string(FieldPhone), value, "Please enter correct phone number")
	}

	return Phone{value: value}, nil
}

func (p Phone) Kind() FieldKind        { return FieldPhone }
func (p Phone) String() string         { return p.value }
func (p Phone) Value() string          { return p.value }
func (p Phone) Equal(other Phone) bool { return p.value == other.value }

// Birthday is a calendar date without time of day.
type Birthday struct {
	value time.Time
}

// NewBirthday returns a Birthday for the calendar date of t.
func NewBirthday(t time.Time) (Birthday, error) {
	if t.IsZero() {
		return Birthday{}, domainerrors.NewValidationError(string(FieldBirthday), "", "Please enter number as 'YYYY-MM-DD'")
	}

	return Birthday{value: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}, nil
}

// ParseBirthday parses a YYYY-MM-DD date.
func ParseBirthday(value string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, domainerrors.NewValidationError(string(FieldBirthday), value, "Please enter date number as 'YYYY-MM-DD'")
	}

	return NewBirthday(t)
}

func (b Birthday) Kind() FieldKind           { return FieldBirthday }
func (b Birthday) String() string            { return b.value.Format(BirthdayLayout) }
func (b Birthday) Value() time.Time          { return b.value }
func (b Birthday) Equal(other Birthday) bool { return b.value.Equal(other.value) }

// DaysUntil returns the number of days from the calendar date of ref to the
// next occurrence of the birthday's month and day. The birthday itself counts
// as zero days away. Feb 29 is observed on Feb 28 in non-leap years.
func (b Birthday) DaysUntil(ref time.Time) int {
	today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	next := b.occurrenceIn(today.Year())
	if next.Before(today) {
		next = b.occurrenceIn(today.Year() + 1)
	}

	return int(next.Sub(today).Hours() / 24)
}

func (b Birthday) occurrenceIn(year int) time.Time {
	month, day := b.value.Month(), b.value.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// EmailRule reports whether a raw email value is acceptable.
type EmailRule func(value string) bool

var (
	emailValidator = validator.New()

	// legacyEmailPattern reproduces the rule of the first release, which
	// expects a literal quoted '@' and rejects ordinary addresses.
	legacyEmailPattern = regexp.MustCompile(`[a-zA-Z]\w*[.]?\w*[.]?\w*'@'\w+[.]\w{2}\w*`)
)

// ConventionalEmail accepts ordinary local@domain addresses.
func ConventionalEmail(value string) bool {
	return emailValidator.Var(value, "required,email") == nil
}

// LegacyEmail accepts only values matching the first release's pattern.
func LegacyEmail(value string) bool {
	return legacyEmailPattern.MatchString(value)
}

// EmailRuleByName maps a configuration value to a rule. Unknown names fall
// back to ConventionalEmail.
func EmailRuleByName(name string) EmailRule {
	if strings.EqualFold(name, "legacy") {
		return LegacyEmail
	}

	return ConventionalEmail
}

// AnyEmail accepts a value passing at least one of rules.
func AnyEmail(rules ...EmailRule) EmailRule {
	return func(value string) bool {
		for _, rule := range rules {
			if rule(value) {
				return true
			}
		}

		return false
	}
}

// StoredEmail accepts emails written under either rule, so switching
// validation.email never makes an existing book unreadable.
var StoredEmail = AnyEmail(ConventionalEmail, LegacyEmail)

// Email is a contact email address.
type Email struct {
	value string
}

// NewEmail validates value with ConventionalEmail.
func NewEmail(value string) (Email, error) {
	return NewEmailWithRule(value, ConventionalEmail)
}

// NewEmailWithRule validates value with rule.
func NewEmailWithRule(value string, rule EmailRule) (Email, error) {
	if rule == nil {
		rule = ConventionalEmail
	}
	if !rule(value) {
		return Email{}, domainerrors.NewValidationError(string(FieldEmail), value, "Please enter correct email")
	}

	return Email{value: value}, nil
}

func (e Email) Kind() FieldKind        { return FieldEmail }
func (e Email) String() string         { return e.value }
func (e Email) Value() string          { return e.value }
func (e Email) Equal(other Email) bool { return e.value == other.value }

// Address is free text shorter than AddressMaxLen characters.
type Address struct {
	value string
}

// NewAddress validates value and returns an Address.
func NewAddress(value string) (Address, error) {
	if utf8.RuneCountInString(value) >= AddressMaxLen {
		return Address{}, domainerrors.NewValidationError(string(FieldAddress), value, "Please enter your address not so large")
	}

	return Address{value: value}, nil
}

func (a Address) Kind() FieldKind          { return FieldAddress }
func (a Address) String() string           { return a.value }
func (a Address) Value() string            { return a.value }
func (a Address) Equal(other Address) bool { return a.value == other.value }
