package analytics

import (
	"math"
	"time"

	"github.com/jhoicas/almacen-bi/internal/application/dto"
)

const forecastPeriods = 6 // meses extrapolados hacia adelante

// extendWithTrend ajusta una tendencia lineal por mínimos cuadrados
// ordinarios sobre la serie mensual (x = índice de mes, y = unidades) y la
// extiende `periods` meses hacia adelante. La historia conserva sus valores
// reales; solo los meses extrapolados llevan el valor ajustado.
//
// Serie vacía → sin proyección. Un solo punto → proyección plana (pendiente 0).
func extendWithTrend(history []dto.MonthlySalesPointDTO, periods int) []dto.ForecastPointDTO {
	points := make([]dto.ForecastPointDTO, 0, len(history)+periods)
	for _, p := range history {
		points = append(points, dto.ForecastPointDTO{
			Month:     p.Month,
			TotalSold: float64(p.TotalSold),
		})
	}
	if len(history) == 0 || periods <= 0 {
		return points
	}

	slope, intercept := fitLine(history)

	last, err := time.Parse(monthLayout, history[len(history)-1].Month)
	if err != nil {
		// Mes no parseable: devolver la historia tal cual
		return points
	}
	n := len(history)
	for i := 1; i <= periods; i++ {
		x := float64(n - 1 + i)
		points = append(points, dto.ForecastPointDTO{
			Month:     last.AddDate(0, i, 0).Format(monthLayout),
			TotalSold: math.Round((intercept+slope*x)*100) / 100,
			Projected: true,
		})
	}
	return points
}

// fitLine mínimos cuadrados ordinarios con una sola variable (índice de mes).
// slope = (nΣxy − ΣxΣy) / (nΣx² − (Σx)²); intercept = (Σy − slope·Σx) / n.
func fitLine(history []dto.MonthlySalesPointDTO) (slope, intercept float64) {
	n := float64(len(history))
	var sumX, sumY, sumXY, sumXX float64
	for i, p := range history {
		x, y := float64(i), float64(p.TotalSold)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		// Un solo punto: línea plana a la altura del punto
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}
