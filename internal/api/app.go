package api

import (
	"time"

	apperrors "github.com/Behyna/sms-services/campaign/internal/errors"
	"github.com/Behyna/sms-services/campaign/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewApp builds the fiber app with error rendering, health and metrics
// middleware installed. Routes are added by SetupRoutes.
func NewApp(logger *zap.Logger, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "campaign",
		ErrorHandler: apperrors.ErrorHandler(logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	app.Use(metrics.HealthCheckMiddleware())
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))

	return app
}
