package main

import (
	"context"
	"log/slog"

	"rubbishday/config"
	"rubbishday/internal/delivery"
	"rubbishday/internal/delivery/api"
	"rubbishday/internal/delivery/api/middleware"
	"rubbishday/internal/delivery/api/router/handler"
	"rubbishday/internal/infra/alexa"
	"rubbishday/internal/infra/council"
	logs "rubbishday/internal/infra/log"
	"rubbishday/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			alexa.NewAddressClient,
			alexa.NewRequestVerifier,
			council.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCollectionService,
			impl.NewConversationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSignatureMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSkillHandler,
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
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
			}
		}()
	}
}
