package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/almacen-bi/internal/application/dto"
	"github.com/jhoicas/almacen-bi/internal/application/ports"
)

var _ ports.Executor = (*Executor)(nil)

// Executor ejecutor genérico de sentencias de solo lectura. Cada llamada toma
// una conexión del pool, corre la sentencia dentro de una transacción y la
// cierra siempre al salir: commit si la lectura terminó bien, rollback en
// cualquier fallo. No restringe el tipo de sentencia; esa frontera de
// confianza se documenta en el handler de consulta libre.
type Executor struct {
	pool *pgxpool.Pool
}

// NewExecutor construye el ejecutor sobre el pool.
func NewExecutor(pool *pgxpool.Pool) *Executor {
	return &Executor{pool: pool}
}

// Execute corre stmt con params y materializa el resultado completo:
// columnas en el orden del SELECT, filas en el orden devuelto.
func (e *Executor) Execute(ctx context.Context, stmt string, params ...any) (*dto.TabularResult, error) {
	tx, err := e.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, stmt, params...)
	if err != nil {
		return nil, fmt.Errorf("ejecutar consulta: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	result := &dto.TabularResult{
		Columns: make([]string, len(fields)),
		Rows:    [][]any{},
	}
	for i, f := range fields {
		result.Columns[i] = f.Name
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("leer fila: %w", err)
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recorrer filas: %w", err)
	}
	rows.Close()

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return result, nil
}
