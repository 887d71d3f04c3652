// Command notifier receives chat events from Pub/Sub push and fans them out
// to the recipient's devices through FCM.
package main

import (
	"context"
	"log/slog"
	"os"

	"makan/config"
	"makan/internal/delivery"
	"makan/internal/delivery/worker"
	"makan/internal/delivery/worker/handler"
	logs "makan/internal/infra/log"
	"makan/internal/infra/notification"
	"makan/internal/infra/persistence/postgres"
	"makan/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type notifierParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewDeviceRepository,
			notification.NewNotificationService,
			impl.NewNotificationService,
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(run),
	).Run()
}

func run(ctx context.Context, params notifierParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}
			params.Logger.Error("Notifier stopped", slog.Any("error", err))

			if err := params.Shutdown(); err != nil {
				params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
