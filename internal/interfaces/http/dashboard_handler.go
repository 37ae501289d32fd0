package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-bi/internal/application/analytics"
	"github.com/jhoicas/almacen-bi/internal/application/dto"
)

// DashboardHandler expone las vistas analíticas fijas del dashboard.
// Los resultados salen de la capa de consulta cacheada: repetir una petición
// dentro de la ventana TTL no vuelve a tocar el almacén.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los KPIs escalares de la cabecera.
// GET /api/dashboard/summary
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(summary)
}

// GetLowStock devuelve los productos bajo su umbral de reposición.
// GET /api/dashboard/low-stock
func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	rows, err := h.uc.GetLowStock(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(rows)
}

// GetMonthlySales devuelve la serie de unidades vendidas por mes.
// GET /api/dashboard/sales/monthly
func (h *DashboardHandler) GetMonthlySales(c *fiber.Ctx) error {
	points, err := h.uc.GetMonthlySales(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(points)
}

// GetSalesByCategory devuelve el pivote mes × categoría.
// GET /api/dashboard/sales/by-category
func (h *DashboardHandler) GetSalesByCategory(c *fiber.Ctx) error {
	pivot, err := h.uc.GetSalesByCategory(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(pivot)
}

// GetSalesForecast devuelve la serie mensual extendida con la proyección lineal.
// GET /api/dashboard/sales/forecast
func (h *DashboardHandler) GetSalesForecast(c *fiber.Ctx) error {
	points, err := h.uc.GetSalesForecast(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(points)
}

// GetInventoryByCategory devuelve el stock agregado por categoría.
// GET /api/dashboard/inventory/by-category
func (h *DashboardHandler) GetInventoryByCategory(c *fiber.Ctx) error {
	rows, err := h.uc.GetInventoryByCategory(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(rows)
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
