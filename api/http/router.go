package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/danielgpm/linkedin-cv/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, upload *handlers.UploadHandler, cv *handlers.CVHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Extraction pipeline (streams server-sent events)
	rg := v1.Group("/resume")
	rg.Post("/upload", upload.Upload)

	// Previously extracted CVs
	cvg := v1.Group("/cv")
	cvg.Get("/latest", cv.Latest)
	cvg.Get("/history", cv.History)
}
