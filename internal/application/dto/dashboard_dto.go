package dto

// SummaryDTO respuesta de GET /api/dashboard/summary.
// Los tres KPIs escalares de la fila superior del dashboard.
type SummaryDTO struct {
	LowStockCount int64  `json:"low_stock_count"` // productos bajo su umbral de reposición
	TotalStock    int64  `json:"total_stock"`     // unidades totales en bodega
	ProductCount  int64  `json:"product_count"`   // productos distintos en catálogo
	DateLabel     string `json:"date_label"`      // ej: "Agosto 2026"
}

// LowStockRowDTO producto con stock por debajo de su umbral de reposición.
type LowStockRowDTO struct {
	ProductID       int64  `json:"product_id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	QuantityInStock int64  `json:"quantity_in_stock"`
	ReorderLevel    int64  `json:"reorder_level"`
}

// MonthlySalesPointDTO punto de la serie de ventas mensuales.
type MonthlySalesPointDTO struct {
	Month     string `json:"month"` // "2026-08"
	TotalSold int64  `json:"total_sold"`
}

// CategoryPivotDTO pivote mes × categoría: una fila por mes presente en
// ventas, una columna por categoría, ceros donde no hubo ventas.
type CategoryPivotDTO struct {
	Categories []string      `json:"categories"`
	Rows       []PivotRowDTO `json:"rows"`
}

// PivotRowDTO fila del pivote. Quantities está alineado con Categories.
type PivotRowDTO struct {
	Month      string  `json:"month"`
	Quantities []int64 `json:"quantities"`
}

// CategoryInventoryDTO stock agregado de una categoría.
type CategoryInventoryDTO struct {
	Category string `json:"category"`
	Quantity int64  `json:"quantity"`
}

// ForecastPointDTO punto de la serie mensual extendida con la proyección
// lineal. Projected marca los meses extrapolados (no persistidos).
type ForecastPointDTO struct {
	Month     string  `json:"month"`
	TotalSold float64 `json:"total_sold"`
	Projected bool    `json:"projected"`
}
