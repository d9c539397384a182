package http

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/melusi-muna/login-register-forms/internal/logging"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Forms   *FormsHandler
	Health  *HealthHandler
	Metrics http.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics))
	}

	app.Post("/login", cfg.Forms.Submit)
	app.Post("/register", cfg.Forms.Submit)
	app.Post("/feedback", cfg.Forms.Feedback)
	app.Get("/session", cfg.Forms.Session)
}

// NewApp builds a fiber app with middlewares and routes attached.
func NewApp(cfg RouteConfig, log logging.Logger, timeout time.Duration) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "formauthd",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})
	RegisterMiddlewares(app, log, timeout)
	RegisterRoutes(app, cfg)
	return app
}
