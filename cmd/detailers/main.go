package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"detailers/config"
	"detailers/internal/delivery"
	"detailers/internal/delivery/http"
	"detailers/internal/delivery/http/middleware"
	"detailers/internal/delivery/http/router/handler"
	"detailers/internal/domain/service"
	"detailers/internal/infra/auth"
	logs "detailers/internal/infra/log"
	"detailers/internal/infra/notification"
	"detailers/internal/infra/persistence/postgres"
	"detailers/internal/infra/pubsub"
	"detailers/internal/infra/qrcode"
	"detailers/internal/infra/storage"
	"detailers/internal/infra/tiles"
	"detailers/internal/usecase/impl"

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
			postgres.NewCompanyRepository,
			postgres.NewLocationRepository,
			postgres.NewLeadRepository,
			postgres.NewClaimRepository,
			postgres.NewOwnerRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewDeviceRepository,
			postgres.NewMediaRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			storage.New,
			tiles.NewTileService,
			newFirebaseService,
			newQRCodeService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSearchService,
			impl.NewCompanyService,
			impl.NewLeadService,
			impl.NewClaimService,
			impl.NewDashboardService,
			impl.NewAccountService,
			impl.NewWizardService,
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
			handler.NewSearchHandler,
			handler.NewCompanyHandler,
			handler.NewLeadHandler,
			handler.NewWizardHandler,
			handler.NewTileHandler,
			handler.NewAccountHandler,
			handler.NewClaimHandler,
			handler.NewDashboardHandler,
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
