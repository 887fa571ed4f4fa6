package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

const deliveriesGroup = `group:"deliveries"`

// Provide registers a constructor returning a Delivery so Run will serve it.
func Provide(constructor any) fx.Option {
	return fx.Provide(fx.Annotate(constructor, fx.ResultTags(deliveriesGroup)))
}

// RunParams collects every provided Delivery.
type RunParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Run serves each delivery in its own goroutine. The first one that fails
// shuts the application down so every OnStop hook runs.
func Run(ctx context.Context, params RunParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}

			params.Logger.Error("Server stopped unexpectedly", slog.Any("error", err))
			if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
				params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
				os.Exit(1)
			}
		}()
	}
}

// FxLogger sends fx's own lifecycle events to the application logger.
func FxLogger(logger *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
}
