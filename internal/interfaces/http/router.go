package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-bi/internal/application/analytics"
	"github.com/jhoicas/almacen-bi/internal/application/query"
	"github.com/jhoicas/almacen-bi/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *analytics.DashboardUseCase
	QuerySvc    *query.CachedService
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Log))

	api := app.Group("/api")

	// Dashboard: consultas analíticas fijas (todas cacheadas)
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/low-stock", dashboardHandler.GetLowStock)
	dashboard.Get("/sales/monthly", dashboardHandler.GetMonthlySales)
	dashboard.Get("/sales/by-category", dashboardHandler.GetSalesByCategory)
	dashboard.Get("/sales/forecast", dashboardHandler.GetSalesForecast)
	dashboard.Get("/inventory/by-category", dashboardHandler.GetInventoryByCategory)

	// Consulta libre (modo exploración del dashboard)
	queryHandler := NewQueryHandler(deps.QuerySvc)
	api.Post("/query", queryHandler.Run)
}
