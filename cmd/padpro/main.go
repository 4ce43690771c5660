package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"padpro/config"
	"padpro/internal/delivery"
	"padpro/internal/delivery/http"
	"padpro/internal/delivery/http/middleware"
	"padpro/internal/delivery/http/router/handler"
	"padpro/internal/domain/service"
	"padpro/internal/infra/auth"
	"padpro/internal/infra/extraction"
	logs "padpro/internal/infra/log"
	"padpro/internal/infra/notification"
	"padpro/internal/infra/persistence/postgres"
	"padpro/internal/infra/pubsub"
	"padpro/internal/usecase/impl"

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
		// Expose engine sub-configs for the services that consume them
		func(cfg *config.Config) *config.AlertsConfig { return cfg.Alerts },
		func(cfg *config.Config) *config.PromotionsConfig { return cfg.Promotions },
		func(cfg *config.Config) *config.AuthConfig { return cfg.Auth },
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewReceiptRepository,
			postgres.NewAlertRepository,
			postgres.NewPromotionRepository,
			postgres.NewWarehouseRepository,
			postgres.NewDeviceRepository,
			postgres.NewDeliveryRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			extraction.NewHTTPExtractor,
			newFirebaseService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required")
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewReceiptService,
			impl.NewAlertService,
			impl.NewMatchService,
			impl.NewPromotionService,
			impl.NewDeviceService,
			impl.NewNotificationService,
			impl.NewSubscriptionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewReceiptHandler,
			handler.NewAlertHandler,
			handler.NewDeviceHandler,
			handler.NewPromotionHandler,
			handler.NewSubscriptionHandler,
			handler.NewTestHandler,
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
