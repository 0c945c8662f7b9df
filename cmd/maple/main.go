package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"maple/config"
	"maple/internal/delivery"
	"maple/internal/delivery/http"
	"maple/internal/delivery/http/middleware"
	"maple/internal/delivery/http/router/handler"
	"maple/internal/domain/service"
	"maple/internal/infra/auth"
	logs "maple/internal/infra/log"
	"maple/internal/infra/notification"
	"maple/internal/infra/payment"
	"maple/internal/infra/persistence/postgres"
	"maple/internal/infra/pubsub"
	"maple/internal/infra/qrcode"
	"maple/internal/infra/storage"
	"maple/internal/usecase/impl"

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
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewAddressRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewPaymentRepository,
			postgres.NewOrderRepository,
			postgres.NewPointsRepository,
			postgres.NewReviewRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newBcryptHasher,
			auth.NewJWTService,
			payment.NewProcessorClient,
			pubsub.NewEventPublisher,
			newFirebaseService,
			newQRCodeService,
			newImageStorage,
			func(cfg *config.Config) *config.PaymentConfig { return cfg.Payment },
		),
	)
}

// newBcryptHasher creates a password hasher with the configured cost
func newBcryptHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil || cfg.Auth.BcryptCost == 0 {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase)
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

// newImageStorage creates the Cloudinary-backed review image storage
func newImageStorage(cfg *config.Config) (service.ImageStorage, error) {
	if cfg.Cloudinary == nil {
		return nil, nil // image uploads are optional
	}

	return storage.NewCloudinaryStorage(cfg.Cloudinary)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAddressService,
			impl.NewMenuService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewPointsService,
			impl.NewReviewService,
			impl.NewNotificationService,
			impl.NewDeviceService,
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
			handler.NewAddressHandler,
			handler.NewMenuHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewPointsHandler,
			handler.NewReviewHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
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
