package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyCommandID is the key for storing the prompt command ID in context.
	KeyCommandID ContextKey = "command_id"

	// KeyLogger is the key for storing the command-scoped logger in context.
	KeyLogger ContextKey = "logger"
)

// NewCommandContext tags ctx with a fresh command ID and a logger carrying it.
func NewCommandContext(ctx context.Context, logger *slog.Logger) context.Context {
	commandID := uuid.New().String()

	ctx = WithCommandID(ctx, commandID)

	return WithLogger(ctx, logger.With(slog.String(string(KeyCommandID), commandID)))
}

// GetCommandID extracts the command ID from context.Context.
// If not found, returns empty string.
func GetCommandID(ctx context.Context) string {
	if id, ok := ctx.Value(KeyCommandID).(string); ok {
		return id
	}

	return ""
}

// WithCommandID returns a new context with the command ID.
func WithCommandID(ctx context.Context, commandID string) context.Context {
	return context.WithValue(ctx, KeyCommandID, commandID)
}

// GetLogger extracts the command-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the command-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
