package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthChecker reports the state of an optional dependency (e.g. NATS).
type HealthChecker interface {
	Name() string
	Healthy() error
}

func RegisterRoutes(app *fiber.App, products *ProductsHandler, checks ...HealthChecker) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		code := fiber.StatusOK
		results := map[string]string{}

		for _, chk := range checks {
			if err := chk.Healthy(); err != nil {
				results[chk.Name()] = err.Error()
				status = "degraded"
				code = fiber.StatusServiceUnavailable
				continue
			}
			results[chk.Name()] = "ok"
		}

		return c.Status(code).JSON(fiber.Map{
			"status": status,
			"checks": results,
		})
	})

	v1 := app.Group("/api/v1")
	v1.Get("/products", products.ListProducts)
	v1.Get("/products/selected", products.SelectedProduct)
}
