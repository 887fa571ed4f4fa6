package middleware

import (
	"log/slog"

	"matchdeportivo/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Base returns the middleware every server installs, outermost first.
// Request IDs are assigned before the logger runs so access logs carry them.
func Base(logger *slog.Logger, cfg *config.Config) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		echomiddleware.Recover(),
		NewRequestIDMiddleware(logger).Process,
		NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	}
}

// ApplyTimeouts copies the configured HTTP timeouts onto the echo server.
func ApplyTimeouts(e *echo.Echo, cfg *config.Config) {
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout
}
