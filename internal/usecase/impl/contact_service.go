// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/book"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageSize  = 5
	defaultOutputDir = "."
	tableRowPattern  = "%-10s %-10s %-10s %-10s %-10s\n"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	book      *book.AddressBook
	qrService service.QRCodeService
	emailRule entity.EmailRule
	pageSize  int
	outputDir string
	now       func() time.Time
	logger    *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	Book      *book.AddressBook
	QRService service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	pageSize := defaultPageSize
	emailRule := entity.ConventionalEmail
	outputDir := defaultOutputDir
	if params.Config != nil {
		if params.Config.Book.PageSize > 0 {
			pageSize = params.Config.Book.PageSize
		}
		emailRule = entity.EmailRuleByName(params.Config.Validation.Email)
		if params.Config.QRCode != nil && params.Config.QRCode.OutputDir != "" {
			outputDir = params.Config.QRCode.OutputDir
		}
	}

	return &contactService{
		book:      params.Book,
		qrService: params.QRService,
		emailRule: emailRule,
		pageSize:  pageSize,
		outputDir: outputDir,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// log returns a command-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add builds a record from input and stores it, replacing any contact of the same name.
// Every field is validated before the book changes.
func (srv *contactService) Add(ctx context.Context, input *usecase.AddContactInput) (string, error) {
	name, err := entity.NewName(input.Name)
	if err != nil {
		return "", err
	}
	phone, err := entity.NewPhone(input.Phone)
	if err != nil {
		return "", err
	}

	opts := []entity.RecordOption{entity.WithPhone(phone)}

	var birthday *entity.Birthday
	if input.Birthday != "" {
		parsed, err := entity.ParseBirthday(input.Birthday)
		if err != nil {
			return "", err
		}
		birthday = &parsed
		opts = append(opts, entity.WithBirthday(parsed))
	}

	var email *entity.Email
	if input.Email != "" {
		parsed, err := entity.NewEmailWithRule(input.Email, srv.emailRule)
		if err != nil {
			return "", err
		}
		email = &parsed
		opts = append(opts, entity.WithEmail(parsed))
	}

	var address *entity.Address
	if input.Address != "" {
		parsed, err := entity.NewAddress(input.Address)
		if err != nil {
			return "", err
		}
		address = &parsed
		opts = append(opts, entity.WithAddress(parsed))
	}

	srv.book.AddRecord(entity.NewRecord(name, opts...))
	srv.log(ctx).Info("Contact added", slog.String("name", name.Value()), slog.Int("fields", len(opts)+1))

	message := fmt.Sprintf("This is ADD, name %s, phone %s", name, phone)
	switch {
	case birthday != nil && email != nil && address != nil:
		message += fmt.Sprintf(", birthday %s, email %s, address %s", birthday, email, address)
	case birthday != nil:
		message += fmt.Sprintf(", and birthday %s", birthday)
	}

	return message, nil
}

// AddPhone appends a phone to an existing contact.
func (srv *contactService) AddPhone(ctx context.Context, name, phone string) (string, error) {
	record, err := srv.findRecord(name, "This Name "+name+" is not found in contacts")
	if err != nil {
		return "", err
	}
	parsed, err := entity.NewPhone(phone)
	if err != nil {
		return "", err
	}

	record.AddPhone(parsed)
	srv.log(ctx).Info("Phone added", slog.String("name", name))

	return fmt.Sprintf("This is ADD, name %s, phone %s", name, parsed), nil
}

// RemovePhone removes every occurrence of phone from a contact.
func (srv *contactService) RemovePhone(ctx context.Context, name, phone string) (string, error) {
	record, err := srv.findRecord(name, "This Name "+name+" is not found in contacts")
	if err != nil {
		return "", err
	}
	parsed, err := srv.findPhone(record, phone, "This "+phone+" is not defined")
	if err != nil {
		return "", err
	}

	record.RemovePhone(parsed)
	srv.log(ctx).Info("Phone removed", slog.String("name", name))

	return fmt.Sprintf("This is REMOVE phone %s from name %s", parsed, name), nil
}

// ChangePhone replaces the first occurrence of the old phone with the new one.
func (srv *contactService) ChangePhone(ctx context.Context, input *usecase.ChangePhoneInput) (string, error) {
	record, err := srv.findRecord(input.Name, "This Name "+input.Name+" is not found in contacts")
	if err != nil {
		return "", err
	}
	oldPhone, err := srv.findPhone(record, input.OldPhone, "This phone number "+input.OldPhone+" is not defined")
	if err != nil {
		return "", err
	}
	newPhone, err := entity.NewPhone(input.NewPhone)
	if err != nil {
		return "", err
	}

	record.ChangePhone(oldPhone, newPhone)
	srv.log(ctx).Info("Phone changed", slog.String("name", input.Name))

	return fmt.Sprintf("This is CHANGE phone %s to new number %s for name %s", oldPhone, newPhone, input.Name), nil
}

// Change replaces a contact with a fresh record holding only phone.
func (srv *contactService) Change(ctx context.Context, name, phone string) (string, error) {
	parsedName, err := entity.NewName(name)
	if err != nil {
		return "", err
	}
	parsedPhone, err := entity.NewPhone(phone)
	if err != nil {
		return "", err
	}

	if err := srv.book.ChangeRecord(entity.NewRecord(parsedName, entity.WithPhone(parsedPhone))); err != nil {
		return "", err
	}
	srv.log(ctx).Info("Contact changed", slog.String("name", name))

	return fmt.Sprintf("This is CHANGE, phone %s for name %s", parsedPhone, parsedName), nil
}

// Phone reports the phones of a contact.
func (srv *contactService) Phone(_ context.Context, name string) (string, error) {
	record, err := srv.findRecord(name, "Name is not found in contacts")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("This is phone %s for name %s", record.PhonesString(), name), nil
}

// DaysToBirthday reports the days left until the contact's next birthday.
func (srv *contactService) DaysToBirthday(_ context.Context, name string) (string, error) {
	record, err := srv.findRecord(name, "Please input correct name")
	if err != nil {
		return "", err
	}
	if record.Birthday == nil {
		return "", domainerrors.NewNotFoundError(
			domainerrors.ErrBirthdayNotSet,
			name,
			"This contact "+name+" has no information about birthday",
		)
	}

	days := record.Birthday.DaysUntil(srv.now())

	return fmt.Sprintf("The %d days left to birthday of contact %s", days, name), nil
}

// Search renders every contact whose name or phone contains term.
func (srv *contactService) Search(ctx context.Context, term string) (string, error) {
	var matched []*entity.Record
	for record := range srv.book.Search(term) {
		matched = append(matched, record)
	}
	srv.log(ctx).Debug("Search finished", slog.String("term", term), slog.Int("matches", len(matched)))

	return renderTable(func(yield func([]*entity.Record) bool) {
		yield(matched)
	}), nil
}

// ShowAll renders the whole book, one table section per page.
func (srv *contactService) ShowAll(_ context.Context) (string, error) {
	return renderTable(srv.book.Paginate(srv.pageSize)), nil
}

// Save writes the book to its storage.
func (srv *contactService) Save(ctx context.Context) (string, error) {
	if err := srv.book.WriteToStorage(ctx); err != nil {
		srv.log(ctx).Error("Failed to save address book", slog.Any("error", err))

		return "", err
	}
	srv.log(ctx).Info("Address book saved", slog.String("location", srv.book.Location()), slog.Int("contacts", srv.book.Len()))

	return "The changes has been saved to file " + srv.book.Location(), nil
}

// ExportQR writes a vCard QR code PNG for the contact into the output directory.
func (srv *contactService) ExportQR(ctx context.Context, name string) (string, error) {
	record, err := srv.findRecord(name, "Name is not found in contacts")
	if err != nil {
		return "", err
	}

	png, err := srv.qrService.GenerateContactQR(record)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate QR code")
	}

	if err := os.MkdirAll(srv.outputDir, 0o755); err != nil {
		return "", domainerrors.NewStorageError(errors.WithStack(err), "mkdir "+srv.outputDir)
	}
	path := filepath.Join(srv.outputDir, record.Name.Value()+".png")
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", domainerrors.NewStorageError(errors.WithStack(err), "write "+path)
	}
	srv.log(ctx).Info("QR code exported", slog.String("name", name), slog.String("path", path))

	return fmt.Sprintf("QR code for contact %s saved to %s", name, path), nil
}

// ImportCard adds the contact described by a vCard file, the payload of a
// contact QR code. A contact of the same name is replaced.
func (srv *contactService) ImportCard(ctx context.Context, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", domainerrors.NewStorageError(errors.WithStack(err), "read "+path)
	}

	record, err := srv.qrService.ParseContactQR(string(content))
	if err != nil {
		return "", errors.Wrap(err, "invalid contact card")
	}

	srv.book.AddRecord(record)
	srv.log(ctx).Info("Contact imported", slog.String("name", record.Name.Value()), slog.String("path", path))

	return fmt.Sprintf("This is IMPORT, name %s, phone %s from %s", record.Name, record.PhonesString(), path), nil
}

func (srv *contactService) findRecord(name, message string) (*entity.Record, error) {
	record, ok := srv.book.Get(name)
	if !ok {
		return nil, domainerrors.NewNotFoundError(domainerrors.ErrContactNotFound, name, message)
	}

	return record, nil
}

func (srv *contactService) findPhone(record *entity.Record, phone, message string) (entity.Phone, error) {
	parsed, err := entity.NewPhone(phone)
	if err != nil {
		return entity.Phone{}, err
	}
	if !record.HasPhone(parsed) {
		return entity.Phone{}, domainerrors.NewNotFoundError(domainerrors.ErrPhoneNotFound, phone, message)
	}

	return parsed, nil
}

// renderTable lays records out in fixed-width columns. Pages after the first
// are separated by a blank line.
func renderTable(pages iter.Seq[[]*entity.Record]) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, tableRowPattern, "Name", "Phones", "Birthday", "Email", "Address")

	first := true
	for page := range pages {
		if !first {
			sb.WriteString("\n")
		}
		first = false

		for _, record := range page {
			fmt.Fprintf(&sb, tableRowPattern,
				record.Name.String(),
				strings.Join(phoneValues(record), ", "),
				optionalString(record.Birthday),
				optionalString(record.Email),
				optionalString(record.Address),
			)
		}
	}

	return sb.String()
}

func phoneValues(record *entity.Record) []string {
	values := make([]string, len(record.Phones))
	for i, phone := range record.Phones {
		values[i] = phone.String()
	}

	return values
}

func optionalString[T fmt.Stringer](value *T) string {
	if value == nil {
		return "None"
	}

	return (*value).String()
}
