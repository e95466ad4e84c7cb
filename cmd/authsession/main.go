package main

import (
	"context"
	"log/slog"
	"os"

	"walletauth/config"
	"walletauth/internal/delivery"
	"walletauth/internal/delivery/api"
	"walletauth/internal/delivery/api/router/handler"
	"walletauth/internal/delivery/worker"
	workerhandler "walletauth/internal/delivery/worker/handler"
	"walletauth/internal/infra/auth"
	logs "walletauth/internal/infra/log"
	"walletauth/internal/infra/notification"
	"walletauth/internal/infra/pubsub"
	"walletauth/internal/infra/qrcode"
	"walletauth/internal/infra/securechannel"
	"walletauth/internal/infra/store"
	"walletauth/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
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
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewExchangeTokenVerifier,
			qrcode.NewQRCodeServiceFromConfig,
			securechannel.NewSealedBoxChannel,
			// Used by the in-process consumer when pubsub.provider is memory
			notification.NewNotificationService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			workerhandler.NewEventHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewConsumer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewJanitor,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
