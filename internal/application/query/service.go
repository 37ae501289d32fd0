// Package query implementa la capa de consulta con memoización: toda lectura
// del dashboard (fija o libre) pasa por aquí y comparte una única caché de
// proceso con expiración por TTL.
package query

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/almacen-bi/internal/application/dto"
	"github.com/jhoicas/almacen-bi/internal/application/ports"
	"github.com/jhoicas/almacen-bi/internal/domain"
)

// DefaultTTL ventana de frescura por defecto de una entrada de caché.
const DefaultTTL = 300 * time.Second

// CachedService ejecuta sentencias de solo lectura memoizando el resultado
// por (texto de la sentencia, parámetros). Dentro de la ventana TTL las
// llamadas repetidas con la misma clave no vuelven a tocar el almacén; tras
// la expiración, la siguiente llamada re-ejecuta y refresca la entrada.
//
// La caché es compartida entre todos los llamadores del proceso, incluida la
// consulta libre. Los errores de ejecución se propagan al llamador inmediato
// y nunca se cachean.
type CachedService struct {
	exec  ports.Executor
	cache ports.ResultCache
	ttl   time.Duration
}

// New construye el servicio. Si ttl <= 0 se usa DefaultTTL.
func New(exec ports.Executor, cache ports.ResultCache, ttl time.Duration) *CachedService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedService{exec: exec, cache: cache, ttl: ttl}
}

// Query devuelve el resultado tabular de stmt con params, desde caché si hay
// una entrada vigente. Una sentencia en blanco devuelve domain.ErrEmptyQuery
// sin tocar caché ni almacén.
func (s *CachedService) Query(ctx context.Context, stmt string, params ...any) (*dto.TabularResult, error) {
	if strings.TrimSpace(stmt) == "" {
		return nil, domain.ErrEmptyQuery
	}
	key, err := cacheKey(stmt, params)
	if err != nil {
		return nil, err
	}
	return s.cache.GetOrCompute(ctx, key, s.ttl, func(ctx context.Context) (*dto.TabularResult, error) {
		return s.exec.Execute(ctx, stmt, params...)
	})
}

// cacheKey serializa los parámetros en JSON y los antepone a la sentencia.
// El separador NUL evita colisiones entre parámetros y texto SQL.
func cacheKey(stmt string, params []any) (string, error) {
	if len(params) == 0 {
		return stmt, nil
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("serializar parámetros de caché: %w", err)
	}
	return string(raw) + "\x00" + stmt, nil
}
