package main

import (
	"context"
	"log/slog"
	"os"

	"quill/config"
	"quill/internal/delivery"
	"quill/internal/delivery/http"
	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router/handler"
	"quill/internal/domain/service"
	"quill/internal/infra/auth"
	"quill/internal/infra/export/ooxml"
	"quill/internal/infra/generator"
	logs "quill/internal/infra/log"
	"quill/internal/infra/persistence/postgres"
	"quill/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProjectRepository,
			postgres.NewSectionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			ooxml.NewExporter,
			newContentGenerator,
		),
	)
}

// newContentGenerator builds the Gemini-backed generator and wraps it with
// the configured retry policy.
func newContentGenerator(ctx context.Context, cfg *config.Config) (service.ContentGenerator, error) {
	gen, err := generator.NewGeminiGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return generator.WithRetry(gen, cfg), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProjectService,
			impl.NewSectionService,
			impl.NewOutlineService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProjectHandler,
			handler.NewSectionHandler,
			handler.NewOutlineHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
