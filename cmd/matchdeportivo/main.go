// Command matchdeportivo serves the pickup-sports REST API.
package main

import (
	"context"

	"matchdeportivo/config"
	"matchdeportivo/internal/delivery"
	"matchdeportivo/internal/delivery/api"
	"matchdeportivo/internal/delivery/api/middleware"
	"matchdeportivo/internal/delivery/api/router/handler"
	"matchdeportivo/internal/domain/service"
	"matchdeportivo/internal/infra/auth"
	logs "matchdeportivo/internal/infra/log"
	"matchdeportivo/internal/infra/persistence/postgres"
	"matchdeportivo/internal/infra/pubsub"
	"matchdeportivo/internal/infra/qrcode"
	"matchdeportivo/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.WithLogger(delivery.FxLogger),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			postgres.Migrate,
			delivery.Run,
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
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewProfileRepository,
			postgres.NewActivityRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewAuditLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates the invite QR code service from configuration
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(0, "", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuditService,
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewNotificationService,
			impl.NewActivityService,
			impl.NewDeviceService,
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
			handler.NewProfileHandler,
			handler.NewActivityHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewAdminHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return delivery.Provide(api.NewServer)
}
