package middleware

import (
	"context"
	"log/slog"

	"contacts/internal/delivery"
	deliverycontext "contacts/internal/delivery/context"
)

// CommandIDMiddleware assigns a unique Command ID to each command and creates a command-scoped logger
type CommandIDMiddleware struct {
	logger *slog.Logger
}

// NewCommandIDMiddleware creates a new Command ID middleware
func NewCommandIDMiddleware(logger *slog.Logger) *CommandIDMiddleware {
	return &CommandIDMiddleware{
		logger: logger,
	}
}

// Process stores a fresh Command ID and a child logger carrying it in the command context
func (m *CommandIDMiddleware) Process(next delivery.CommandHandler) delivery.CommandHandler {
	return func(ctx context.Context, cmd *delivery.Command) (string, error) {
		ctx = deliverycontext.NewCommandContext(ctx, m.logger.With(slog.String("command", cmd.Keyword)))

		return next(ctx, cmd)
	}
}
