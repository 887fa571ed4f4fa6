// Command pushworker receives notification events from Pub/Sub and delivers
// them to the recipients' registered devices.
package main

import (
	"context"

	"matchdeportivo/config"
	"matchdeportivo/internal/delivery"
	"matchdeportivo/internal/delivery/worker"
	"matchdeportivo/internal/delivery/worker/handler"
	logs "matchdeportivo/internal/infra/log"
	"matchdeportivo/internal/infra/notification"
	"matchdeportivo/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.WithLogger(delivery.FxLogger),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewDeviceRepository,
			notification.NewPushNotifier,
			handler.NewPushHandler,
		),
		delivery.Provide(worker.NewServer),
		fx.Invoke(delivery.Run),
	).Run()
}
