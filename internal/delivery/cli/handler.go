package cli

import (
	"context"
	"fmt"
	"strings"

	"contacts/internal/delivery"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/usecase"
)

// ContactHandler adapts prompt commands to the contact use cases.
type ContactHandler struct {
	contacts usecase.ContactUsecase
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contacts usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// requireArgs fails with ErrInvalidIndex when cmd has fewer than n arguments.
func requireArgs(cmd *delivery.Command, n int) error {
	if len(cmd.Args) < n {
		return domainerrors.ErrInvalidIndex.WrapMessage(
			fmt.Sprintf("%s expects %d arguments, got %d", cmd.Keyword, n, len(cmd.Args)),
		)
	}

	return nil
}

// arg returns the i-th argument, or "" when absent.
func arg(cmd *delivery.Command, i int) string {
	if i < len(cmd.Args) {
		return cmd.Args[i]
	}

	return ""
}

// Add handles "add <name> <phone> [birthday] [email] [address]".
// Every word after the email belongs to the address.
func (h *ContactHandler) Add(ctx context.Context, cmd *delivery.Command) (string, error) {
	if err := requireArgs(cmd, 2); err != nil {
		return "", err
	}

	input := &usecase.AddContactInput{
		Name:     cmd.Args[0],
		Phone:    cmd.Args[1],
		Birthday: arg(cmd, 2),
		Email:    arg(cmd, 3),
	}
	if len(cmd.Args) > 4 {
		input.Address = strings.Join(cmd.Args[4:], " ")
	}

	return h.contacts.Add(ctx, input)
}

// AddPhone handles "phone add <name> <phone>".
func (h *ContactHandler) AddPhone(ctx context.Context, cmd *delivery.Command) (string, error) {
	if err := requireArgs(cmd, 2); err != nil {
		return "", err
	}

	return h.contacts.AddPhone(ctx, cmd.Args[0], cmd.Args[1])
}

// ChangePhone handles "phone change <name> <old> <new>".
func (h *ContactHandler) ChangePhone(ctx context.Context, cmd *delivery.Command) (string, error) {
	if err := requireArgs(cmd, 3); err != nil {
		return "", err
	}

	return h.contacts.ChangePhone(ctx, &usecase.ChangePhoneInput{
		Name:     cmd.Args[0],
		OldPhone: cmd.Args[1],
		NewPhone: cmd.Args[2],
	})
}

// RemovePhone handles "phone remove <name> <phone>".
func (h *ContactHandler) RemovePhone(ctx context.Context, cmd *delivery.Command) (string, error) {
	if err := requireArgs(cmd, 2); err != nil {
		return "", err
	}

	return h.contacts.RemovePhone(ctx, cmd.Args[0], cmd.Args[1])
}

// DaysToBirthday handles "days to birthday <name>".
func (h *ContactHandler) DaysToBirthday(ctx context.Context, cmd *delivery.Command) (string, error) {
	if err := requireArgs(cmd, 1); err != nil {
		return "", err
	}

	return h.contacts.DaysToBirthday(ctx, cmd.Args[0])
}

// Change handles "change <name> <phone>".
func (h *ContactHandler) Change(ctx context.Context, cmd *delivery.Command) (string, error) {
	if err := requireArgs(cmd, 2); err != nil {
		return "", err
	}

	return h.contacts.Change(ctx, cmd.Args[0], cmd.Args[1])
}

// Phone handles "phone <name>".
func (h *ContactHandler) Phone(ctx context.Context, cmd *delivery.Command) (string, error) {
	if err := requireArgs(cmd, 1); err != nil {
		return "", err
	}

	return h.contacts.Phone(ctx, cmd.Args[0])
}

// ShowAll handles "show all".
func (h *ContactHandler) ShowAll(ctx context.Context, _ *delivery.Command) (string, error) {
	return h.contacts.ShowAll(ctx)
}

// Search handles "search <text>".
func (h *ContactHandler) Search(ctx context.Context, cmd *delivery.Command) (string, error) {
	if err := requireArgs(cmd, 1); err != nil {
		return "", err
	}

	return h.contacts.Search(ctx, cmd.Args[0])
}

// QR handles "qr <name>".
func (h *ContactHandler) QR(ctx context.Context, cmd *delivery.Command) (string, error) {
	if err := requireArgs(cmd, 1); err != nil {
		return "", err
	}

	return h.contacts.ExportQR(ctx, cmd.Args[0])
}

// Import handles "import <vcard file>".
func (h *ContactHandler) Import(ctx context.Context, cmd *delivery.Command) (string, error) {
	if err := requireArgs(cmd, 1); err != nil {
		return "", err
	}

	return h.contacts.ImportCard(ctx, cmd.Args[0])
}

// Save handles "save".
func (h *ContactHandler) Save(ctx context.Context, _ *delivery.Command) (string, error) {
	return h.contacts.Save(ctx)
}
