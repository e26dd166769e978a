package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	appforecast "github.com/tu-usuario/retailflow-erp/internal/application/forecast"
	"github.com/tu-usuario/retailflow-erp/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CashFlowUC       *appforecast.CashFlowUseCase
	ReorderUC        *appforecast.ReorderUseCase
	CustomerHealthUC *appforecast.CustomerHealthUseCase
	Logger           *logger.Logger
	MetricsEnabled   bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if deps.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := app.Group("/api")

	// Pronóstico de flujo de caja
	forecastGroup := api.Group("/forecast")
	forecastHandler := NewForecastHandler(deps.CashFlowUC, deps.Logger)
	forecastGroup.Get("/cash-flow", forecastHandler.CashFlow)

	// Sugerencias de reposición
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.ReorderUC, deps.Logger)
	invGroup.Get("/reorder-suggestions", inventoryHandler.ReorderSuggestions)
	invGroup.Get("/reorder-suggestions/export", inventoryHandler.ExportReorderSuggestions)

	// Salud de clientes
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerHealthUC, deps.Logger)
	customers.Get("/health", customerHandler.Health)
}
