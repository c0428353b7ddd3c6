package handlers

import (
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupSystemRoutes wires the liveness string, the readiness probe, and the
// Prometheus endpoint. ready flips to true once the schema reconciler and
// the leveling seed have both completed cleanly; until then /healthz answers
// 503 so orchestrators keep traffic away from a possibly inconsistent schema.
func SetupSystemRoutes(app *fiber.App, ready *atomic.Bool) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Arena WebApp Server is running!")
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if !ready.Load() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "starting",
			})
		}
		return c.JSON(fiber.Map{"status": "ready"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
