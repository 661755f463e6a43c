package main

import (
	"context"
	"log/slog"

	"contacts/config"
	"contacts/internal/delivery"
	"contacts/internal/delivery/cli"
	"contacts/internal/domain/book"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"
	logs "contacts/internal/infra/log"
	"contacts/internal/infra/persistence"
	"contacts/internal/infra/qrcode"
	"contacts/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		injectInfra(),
		injectDomain(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.New,
	)
}

func injectDomain() fx.Option {
	return fx.Provide(
		book.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	emailRule := entity.EmailRuleByName(cfg.Validation.Email)
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", emailRule)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, emailRule)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewContactService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			cli.NewContactHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				cli.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer runs every delivery once the app has started. The app shuts
// down as soon as a delivery returns.
func startServer(ctx context.Context, params startServerParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					exitCode := 0
					if err := d.Serve(ctx); err != nil {
						params.Logger.Error("Delivery stopped with error", slog.Any("error", err))
						exitCode = 1
					}
					if err := params.Shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
						params.Logger.Error("Failed to shut down", slog.Any("error", err))
					}
				}()
			}

			return nil
		},
	})
}
