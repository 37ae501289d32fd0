package analytics

import (
	"fmt"
	"strconv"
	"time"
)

const monthLayout = "2006-01"

// Los valores llegan normalizados por el snapshot JSON de la caché: números
// como float64, fechas como string RFC 3339. Estos helpers vuelven a los
// tipos que el dashboard necesita.

func asInt64(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	case float64:
		return int64(x)
	case string:
		n, _ := strconv.ParseInt(x, 10, 64)
		return n
	default:
		return 0
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asMonth normaliza el valor de DATE_TRUNC('month', ...) a "2006-01".
func asMonth(v any) (string, error) {
	switch x := v.(type) {
	case time.Time:
		return x.Format(monthLayout), nil
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02", monthLayout} {
			if t, err := time.Parse(layout, x); err == nil {
				return t.Format(monthLayout), nil
			}
		}
		return "", fmt.Errorf("mes no parseable: %q", x)
	default:
		return "", fmt.Errorf("tipo de mes inesperado: %T", v)
	}
}
