package handler

import (
	"github.com/gofiber/fiber/v2"

	"docmap/internal/service"
)

// HealthCheck reports service status and the generation model in use.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(svc service.MindmapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"model":  svc.Model(),
		})
	}
}

// LivenessProbe is a minimal probe for orchestrators.
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, svc service.MindmapService) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoints
	app.Get("/health", HealthCheck(svc))
	app.Get("/healthz", LivenessProbe())

	// Mindmap endpoints
	app.Post("/mindmaps", GenerateMindmap(svc))
	app.Get("/mindmaps", ListMindmaps(svc))
	app.Get("/mindmaps/:id", GetMindmap(svc))
	app.Get("/mindmaps/:id/markdown", MindmapMarkdown(svc))
	app.Get("/mindmaps/:id/download", DownloadMindmap(svc))
	app.Get("/mindmaps/:id/view", ViewMindmap(svc))
	app.Get("/mindmaps/:id/outline", MindmapOutline(svc))
	app.Post("/mindmaps/:id/questions", GenerateQuestions(svc))
	app.Delete("/mindmaps/:id", DeleteMindmap(svc))
}
