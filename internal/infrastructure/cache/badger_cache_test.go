package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-bi/internal/application/dto"
	"github.com/jhoicas/almacen-bi/internal/infrastructure/cache"
)

func newCache(t *testing.T) *cache.ResultCache {
	t.Helper()
	c, err := cache.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func tabular() *dto.TabularResult {
	return &dto.TabularResult{
		Columns: []string{"total"},
		Rows:    [][]any{{float64(3500)}},
	}
}

// Miss ejecuta compute una vez; el hit posterior devuelve el snapshot sin
// volver a computar.
func TestGetOrCompute_ComputaUnaVez(t *testing.T) {
	c := newCache(t)

	computes := 0
	compute := func(ctx context.Context) (*dto.TabularResult, error) {
		computes++
		return tabular(), nil
	}

	first, err := c.GetOrCompute(context.Background(), "k", time.Minute, compute)
	require.NoError(t, err)
	second, err := c.GetOrCompute(context.Background(), "k", time.Minute, compute)
	require.NoError(t, err)

	assert.Equal(t, 1, computes)
	assert.Equal(t, first, second, "miss y hit deben compartir representación")
}

// Los errores de compute se propagan tal cual y no dejan entrada en la caché.
func TestGetOrCompute_PropagaErrores(t *testing.T) {
	c := newCache(t)
	boom := errors.New("conexión rechazada")

	_, err := c.GetOrCompute(context.Background(), "k", time.Minute,
		func(ctx context.Context) (*dto.TabularResult, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	computes := 0
	_, err = c.GetOrCompute(context.Background(), "k", time.Minute,
		func(ctx context.Context) (*dto.TabularResult, error) {
			computes++
			return tabular(), nil
		})
	require.NoError(t, err)
	assert.Equal(t, 1, computes, "el error anterior no debe haber dejado entrada")
}

// Con TTL cero no se persiste nada: cada llamada computa de nuevo.
func TestGetOrCompute_TTLCeroNoGuarda(t *testing.T) {
	c := newCache(t)

	computes := 0
	compute := func(ctx context.Context) (*dto.TabularResult, error) {
		computes++
		return tabular(), nil
	}

	_, err := c.GetOrCompute(context.Background(), "k", 0, compute)
	require.NoError(t, err)
	_, err = c.GetOrCompute(context.Background(), "k", 0, compute)
	require.NoError(t, err)

	assert.Equal(t, 2, computes)
}

// Una entrada vencida se recalcula aunque Badger aún no la haya recolectado.
func TestGetOrCompute_EntradaVence(t *testing.T) {
	c := newCache(t)

	computes := 0
	compute := func(ctx context.Context) (*dto.TabularResult, error) {
		computes++
		return tabular(), nil
	}

	_, err := c.GetOrCompute(context.Background(), "k", 50*time.Millisecond, compute)
	require.NoError(t, err)

	time.Sleep(120 * time.Millisecond)

	_, err = c.GetOrCompute(context.Background(), "k", 50*time.Millisecond, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, computes)
}
