package analytics_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-bi/internal/application/analytics"
	"github.com/jhoicas/almacen-bi/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeQueryer resuelve cada sentencia por una subcadena discriminante, con
// valores ya normalizados a la representación JSON de la caché (números como
// float64, fechas como string).
type fakeQueryer struct {
	results map[string]*dto.TabularResult
	err     error
}

func (f *fakeQueryer) Query(ctx context.Context, stmt string, params ...any) (*dto.TabularResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	for marker, result := range f.results {
		if strings.Contains(stmt, marker) {
			return result, nil
		}
	}
	return &dto.TabularResult{Columns: []string{}, Rows: [][]any{}}, nil
}

// Marcadores únicos de cada sentencia fija del dashboard.
const (
	markLowStock     = "reorder_level"
	markTotalStock   = "COALESCE"
	markProductCount = "COUNT(*)"
	markMonthly      = "GROUP BY 1"
	markPivot        = "DATE_TRUNC('month', s.sale_date)"
	markInvByCat     = "SUM(i.quantity_in_stock)"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El producto A (3 < 10) aparece; B no viene en el resultado porque el filtro
// vive en la sentencia SQL. Se verifica el mapeo fila → DTO.
func TestGetLowStock_MapeaFilas(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeQueryer{results: map[string]*dto.TabularResult{
		markLowStock: {
			Columns: []string{"product_id", "name", "category", "quantity_in_stock", "reorder_level"},
			Rows:    [][]any{{float64(1), "Producto 1", "Alimentos", float64(3), float64(10)}},
		},
	}})

	rows, err := uc.GetLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, dto.LowStockRowDTO{
		ProductID:       1,
		Name:            "Producto 1",
		Category:        "Alimentos",
		QuantityInStock: 3,
		ReorderLevel:    10,
	}, rows[0])
}

// El pivote tiene una fila por cada mes con ventas y una columna por cada
// categoría presente, con cero (no ausencia) en las combinaciones sin ventas.
func TestGetSalesByCategory_PivoteCompletoConCeros(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeQueryer{results: map[string]*dto.TabularResult{
		markPivot: {
			Columns: []string{"category", "month", "qty"},
			Rows: [][]any{
				{"Alimentos", "2026-01-01T00:00:00Z", float64(5)},
				{"Ropa", "2026-02-01T00:00:00Z", float64(7)},
				{"Alimentos", "2026-02-01T00:00:00Z", float64(2)},
			},
		},
	}})

	pivot, err := uc.GetSalesByCategory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Alimentos", "Ropa"}, pivot.Categories)
	require.Len(t, pivot.Rows, 2)
	assert.Equal(t, dto.PivotRowDTO{Month: "2026-01", Quantities: []int64{5, 0}}, pivot.Rows[0],
		"enero no tuvo ventas de Ropa: debe llevar cero explícito")
	assert.Equal(t, dto.PivotRowDTO{Month: "2026-02", Quantities: []int64{2, 7}}, pivot.Rows[1])
}

// Meses en la representación JSON de la caché (RFC 3339) se normalizan a "2006-01".
func TestGetMonthlySales_NormalizaMeses(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeQueryer{results: map[string]*dto.TabularResult{
		markMonthly: {
			Columns: []string{"month", "total_sold"},
			Rows: [][]any{
				{"2026-07-01T00:00:00Z", float64(120)},
				{"2026-08-01T00:00:00Z", float64(95)},
			},
		},
	}})

	points, err := uc.GetMonthlySales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.MonthlySalesPointDTO{
		{Month: "2026-07", TotalSold: 120},
		{Month: "2026-08", TotalSold: 95},
	}, points)
}

// Sobre una serie perfectamente lineal la proyección OLS es exacta: la recta
// pasa por todos los puntos y los 6 meses extrapolados la continúan.
func TestGetSalesForecast_SerieLinealExacta(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeQueryer{results: map[string]*dto.TabularResult{
		markMonthly: {
			Columns: []string{"month", "total_sold"},
			Rows: [][]any{
				{"2026-01-01T00:00:00Z", float64(10)},
				{"2026-02-01T00:00:00Z", float64(20)},
				{"2026-03-01T00:00:00Z", float64(30)},
				{"2026-04-01T00:00:00Z", float64(40)},
			},
		},
	}})

	points, err := uc.GetSalesForecast(context.Background())
	require.NoError(t, err)
	require.Len(t, points, 10, "4 meses reales + 6 proyectados")

	for i, p := range points[:4] {
		assert.False(t, p.Projected, "la historia no se marca como proyección")
		assert.InDelta(t, float64((i+1)*10), p.TotalSold, 1e-9)
	}

	wantMonths := []string{"2026-05", "2026-06", "2026-07", "2026-08", "2026-09", "2026-10"}
	for i, p := range points[4:] {
		assert.True(t, p.Projected)
		assert.Equal(t, wantMonths[i], p.Month)
		assert.InDelta(t, float64((i+5)*10), p.TotalSold, 1e-9,
			"la recta 10·(x+1) debe continuar en el mes %s", p.Month)
	}
}

// Serie vacía: sin historia no hay nada que proyectar.
func TestGetSalesForecast_SerieVacia(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeQueryer{results: map[string]*dto.TabularResult{}})

	points, err := uc.GetSalesForecast(context.Background())
	require.NoError(t, err)
	assert.Empty(t, points)
}

// GetSummary compone los tres KPIs de sus tres consultas.
func TestGetSummary_ComponeKPIs(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeQueryer{results: map[string]*dto.TabularResult{
		markLowStock: {
			Columns: []string{"product_id", "name", "category", "quantity_in_stock", "reorder_level"},
			Rows: [][]any{
				{float64(1), "Producto 1", "Alimentos", float64(3), float64(10)},
				{float64(7), "Producto 7", "Ropa", float64(4), float64(12)},
			},
		},
		markTotalStock:   {Columns: []string{"total"}, Rows: [][]any{{float64(3500)}}},
		markProductCount: {Columns: []string{"c"}, Rows: [][]any{{float64(100)}}},
	}})

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.LowStockCount)
	assert.Equal(t, int64(3500), summary.TotalStock)
	assert.Equal(t, int64(100), summary.ProductCount)
	assert.NotEmpty(t, summary.DateLabel)
}

// Un fallo de la capa de consulta llega al llamador envuelto con contexto.
func TestGetSummary_PropagaErrores(t *testing.T) {
	boom := errors.New("conexión rechazada")
	uc := analytics.NewDashboardUseCase(&fakeQueryer{err: boom})

	_, err := uc.GetSummary(context.Background())
	require.ErrorIs(t, err, boom)
}
