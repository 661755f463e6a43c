package middleware

import (
	"context"
	"log/slog"
	"time"

	"contacts/config"
	"contacts/internal/delivery"
	deliverycontext "contacts/internal/delivery/context"
	domainerrors "contacts/internal/domain/errors"
)

// LoggerMiddleware controllable logging middleware
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle logs every failed command, and every command when debug is enabled
func (m *LoggerMiddleware) Handle(next delivery.CommandHandler) delivery.CommandHandler {
	return func(ctx context.Context, cmd *delivery.Command) (string, error) {
		start := time.Now()
		out, err := next(ctx, cmd)
		if m.debug || err != nil {
			m.logCommand(ctx, cmd, start, err)
		}

		return out, err
	}
}

// logCommand logs command details
func (m *LoggerMiddleware) logCommand(ctx context.Context, cmd *delivery.Command, start time.Time, err error) {
	fields := []slog.Attr{
		slog.String("command_id", deliverycontext.GetCommandID(ctx)),
		slog.String("command", cmd.Keyword),
		slog.Int("args", len(cmd.Args)),
		slog.Duration("latency", time.Since(start)),
	}

	logLevel := slog.LevelInfo
	if err != nil {
		info := domainerrors.ToErrorInfo(err)
		fields = append(fields,
			slog.String("error_code", info.Code),
			slog.String("error_kind", info.Kind.String()),
			slog.Any("error", err),
		)

		// User mistakes are expected at a prompt; only internal and IO failures are errors.
		logLevel = slog.LevelWarn
		if info.Kind == domainerrors.KindInternal || info.Kind == domainerrors.KindIO {
			logLevel = slog.LevelError
		}
	}

	m.logger.LogAttrs(ctx, logLevel, "Command", fields...)
}
