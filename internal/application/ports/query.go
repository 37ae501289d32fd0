// Package ports define los puertos de salida de la capa de aplicación.
// El dominio/aplicación solo conoce estos contratos, no las implementaciones
// concretas (PostgreSQL, BadgerDB, mocks de test).
package ports

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-bi/internal/application/dto"
)

// Executor ejecuta una sentencia de solo lectura contra el almacén.
// La implementación abre una conexión de alcance corto, corre la sentencia
// dentro de una transacción que siempre se cierra al salir (éxito o fallo)
// y devuelve el resultado tabular ordenado.
type Executor interface {
	Execute(ctx context.Context, stmt string, params ...any) (*dto.TabularResult, error)
}

// ResultCache memoización de resultados tabulares con expiración por tiempo.
// GetOrCompute devuelve la entrada vigente para key, o ejecuta compute, guarda
// el resultado con el TTL indicado y lo devuelve. Los errores de compute se
// propagan y nunca se cachean. No hay invalidación explícita: solo expiración.
type ResultCache interface {
	GetOrCompute(
		ctx context.Context,
		key string,
		ttl time.Duration,
		compute func(ctx context.Context) (*dto.TabularResult, error),
	) (*dto.TabularResult, error)
}
