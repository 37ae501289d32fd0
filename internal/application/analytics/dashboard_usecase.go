// Package analytics contiene los casos de uso del dashboard de inventario y
// ventas: las consultas analíticas fijas y la proyección de tendencia.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/almacen-bi/internal/application/dto"
)

const lowStockLimit = 20 // filas máximas del widget de stock bajo

// Queryer capa de consulta con caché; el caso de uso no sabe si el resultado
// vino del almacén o de la caché.
type Queryer interface {
	Query(ctx context.Context, stmt string, params ...any) (*dto.TabularResult, error)
}

// Sentencias fijas del dashboard. Van siempre por la capa cacheada: el texto
// de la sentencia más los parámetros son la clave de memoización.
const (
	stmtLowStock = `
	SELECT p.product_id, p.name, p.category, i.quantity_in_stock, p.reorder_level
	FROM products p
	JOIN inventory i ON i.product_id = p.product_id
	WHERE i.quantity_in_stock < p.reorder_level
	ORDER BY i.quantity_in_stock ASC
	LIMIT $1`

	stmtTotalStock = `SELECT COALESCE(SUM(quantity_in_stock), 0) AS total FROM inventory`

	stmtProductCount = `SELECT COUNT(*) AS c FROM products`

	stmtMonthlySales = `
	SELECT DATE_TRUNC('month', sale_date) AS month, SUM(quantity_sold) AS total_sold
	FROM sales
	GROUP BY 1
	ORDER BY 1`

	stmtSalesByCategory = `
	SELECT p.category, DATE_TRUNC('month', s.sale_date) AS month, SUM(s.quantity_sold) AS qty
	FROM sales s
	JOIN products p ON p.product_id = s.product_id
	GROUP BY p.category, month
	ORDER BY month`

	stmtInventoryByCategory = `
	SELECT p.category, SUM(i.quantity_in_stock) AS qty
	FROM inventory i
	JOIN products p ON p.product_id = i.product_id
	GROUP BY p.category
	ORDER BY p.category`
)

// DashboardUseCase resuelve las vistas del dashboard sobre la capa de
// consulta cacheada.
type DashboardUseCase struct {
	q Queryer
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(q Queryer) *DashboardUseCase {
	return &DashboardUseCase{q: q}
}

// GetSummary construye los KPIs escalares de la cabecera del dashboard.
//
// Tres consultas en paralelo:
//  1. low-stock      → LowStockCount
//  2. total stock    → TotalStock
//  3. product count  → ProductCount
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.SummaryDTO, error) {
	type countResult struct {
		n   int64
		err error
	}

	lowCh := make(chan countResult, 1)
	stockCh := make(chan countResult, 1)
	prodCh := make(chan countResult, 1)

	go func() {
		rows, err := uc.GetLowStock(ctx)
		lowCh <- countResult{int64(len(rows)), err}
	}()
	go func() {
		n, err := uc.scalar(ctx, stmtTotalStock)
		stockCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.scalar(ctx, stmtProductCount)
		prodCh <- countResult{n, err}
	}()

	low := <-lowCh
	stock := <-stockCh
	prod := <-prodCh

	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: stock total: %w", stock.err)
	}
	if prod.err != nil {
		return nil, fmt.Errorf("dashboard: total de productos: %w", prod.err)
	}

	return &dto.SummaryDTO{
		LowStockCount: low.n,
		TotalStock:    stock.n,
		ProductCount:  prod.n,
		DateLabel:     monthLabel(time.Now()),
	}, nil
}

// GetLowStock lista los productos con stock por debajo de su umbral de
// reposición, ascendente por cantidad, limitado a lowStockLimit filas.
func (uc *DashboardUseCase) GetLowStock(ctx context.Context) ([]dto.LowStockRowDTO, error) {
	result, err := uc.q.Query(ctx, stmtLowStock, lowStockLimit)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}

	rows := make([]dto.LowStockRowDTO, 0, len(result.Rows))
	for _, r := range result.Rows {
		if len(r) < 5 {
			return nil, fmt.Errorf("low stock: fila con %d columnas, se esperaban 5", len(r))
		}
		rows = append(rows, dto.LowStockRowDTO{
			ProductID:       asInt64(r[0]),
			Name:            asString(r[1]),
			Category:        asString(r[2]),
			QuantityInStock: asInt64(r[3]),
			ReorderLevel:    asInt64(r[4]),
		})
	}
	return rows, nil
}

// GetMonthlySales serie de unidades vendidas por mes calendario, ascendente.
func (uc *DashboardUseCase) GetMonthlySales(ctx context.Context) ([]dto.MonthlySalesPointDTO, error) {
	result, err := uc.q.Query(ctx, stmtMonthlySales)
	if err != nil {
		return nil, fmt.Errorf("ventas mensuales: %w", err)
	}

	points := make([]dto.MonthlySalesPointDTO, 0, len(result.Rows))
	for _, r := range result.Rows {
		month, err := asMonth(r[0])
		if err != nil {
			return nil, fmt.Errorf("ventas mensuales: %w", err)
		}
		points = append(points, dto.MonthlySalesPointDTO{
			Month:     month,
			TotalSold: asInt64(r[1]),
		})
	}
	return points, nil
}

// GetSalesByCategory pivote mes × categoría de unidades vendidas.
// Una fila por cada mes con ventas, una columna por cada categoría presente,
// y cero (no ausencia) en las combinaciones sin ventas.
func (uc *DashboardUseCase) GetSalesByCategory(ctx context.Context) (*dto.CategoryPivotDTO, error) {
	result, err := uc.q.Query(ctx, stmtSalesByCategory)
	if err != nil {
		return nil, fmt.Errorf("ventas por categoría: %w", err)
	}

	byMonth := map[string]map[string]int64{}
	catSet := map[string]struct{}{}
	for _, r := range result.Rows {
		category := asString(r[0])
		month, err := asMonth(r[1])
		if err != nil {
			return nil, fmt.Errorf("ventas por categoría: %w", err)
		}
		if byMonth[month] == nil {
			byMonth[month] = map[string]int64{}
		}
		byMonth[month][category] += asInt64(r[2])
		catSet[category] = struct{}{}
	}

	categories := make([]string, 0, len(catSet))
	for c := range catSet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	pivot := &dto.CategoryPivotDTO{Categories: categories, Rows: make([]dto.PivotRowDTO, 0, len(months))}
	for _, m := range months {
		quantities := make([]int64, len(categories))
		for i, c := range categories {
			quantities[i] = byMonth[m][c] // cero si no hubo ventas ese mes
		}
		pivot.Rows = append(pivot.Rows, dto.PivotRowDTO{Month: m, Quantities: quantities})
	}
	return pivot, nil
}

// GetInventoryByCategory stock agregado por categoría, ascendente por nombre.
func (uc *DashboardUseCase) GetInventoryByCategory(ctx context.Context) ([]dto.CategoryInventoryDTO, error) {
	result, err := uc.q.Query(ctx, stmtInventoryByCategory)
	if err != nil {
		return nil, fmt.Errorf("inventario por categoría: %w", err)
	}

	rows := make([]dto.CategoryInventoryDTO, 0, len(result.Rows))
	for _, r := range result.Rows {
		rows = append(rows, dto.CategoryInventoryDTO{
			Category: asString(r[0]),
			Quantity: asInt64(r[1]),
		})
	}
	return rows, nil
}

// GetSalesForecast serie mensual real extendida con la proyección lineal de
// los próximos 6 meses (ver forecast.go). Solo presentación: nada se persiste.
func (uc *DashboardUseCase) GetSalesForecast(ctx context.Context) ([]dto.ForecastPointDTO, error) {
	history, err := uc.GetMonthlySales(ctx)
	if err != nil {
		return nil, err
	}
	return extendWithTrend(history, forecastPeriods), nil
}

func (uc *DashboardUseCase) scalar(ctx context.Context, stmt string) (int64, error) {
	result, err := uc.q.Query(ctx, stmt)
	if err != nil {
		return 0, err
	}
	if len(result.Rows) == 0 || len(result.Rows[0]) == 0 {
		return 0, fmt.Errorf("consulta escalar sin filas")
	}
	return asInt64(result.Rows[0][0]), nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
