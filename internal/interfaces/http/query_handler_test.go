package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-bi/internal/application/dto"
	"github.com/jhoicas/almacen-bi/internal/application/query"
	"github.com/jhoicas/almacen-bi/internal/infrastructure/cache"
	apphttp "github.com/jhoicas/almacen-bi/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeExecutor simula el almacén detrás de la capa cacheada.
type fakeExecutor struct {
	calls  int
	result *dto.TabularResult
	err    error
}

func (f *fakeExecutor) Execute(ctx context.Context, stmt string, params ...any) (*dto.TabularResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// buildQueryApp monta una app Fiber mínima con solo el endpoint de consulta libre.
func buildQueryApp(t *testing.T, exec *fakeExecutor) *fiber.App {
	t.Helper()
	c, err := cache.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	handler := apphttp.NewQueryHandler(query.New(exec, c, time.Minute))
	app := fiber.New()
	app.Post("/api/query", handler.Run)
	return app
}

func postQuery(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/query", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la consulta libre
// ──────────────────────────────────────────────────────────────────────────────

// SQL inválido: el error del almacén se muestra al usuario como 400 con
// mensaje, y la app sigue atendiendo peticiones.
func TestQueryLibre_SQLInvalidoDevuelveMensaje(t *testing.T) {
	exec := &fakeExecutor{err: errors.New(`syntax error at or near "SELEC"`)}
	app := buildQueryApp(t, exec)

	resp := postQuery(t, app, dto.FreeQueryRequest{SQL: "SELEC * FROM products"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "QUERY_FAILED", body.Code)
	assert.Contains(t, body.Message, "syntax error", "el mensaje de error debe ser visible para el usuario")

	// El proceso sigue vivo: la misma app atiende la siguiente petición
	exec.err = nil
	exec.result = &dto.TabularResult{Columns: []string{"c"}, Rows: [][]any{{float64(100)}}}
	resp2 := postQuery(t, app, dto.FreeQueryRequest{SQL: "SELECT COUNT(*) AS c FROM products"})
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

// Consulta válida: devuelve la tabla con columnas y filas ordenadas.
func TestQueryLibre_DevuelveTabla(t *testing.T) {
	exec := &fakeExecutor{result: &dto.TabularResult{
		Columns: []string{"product_id", "name"},
		Rows:    [][]any{{float64(1), "Producto 1"}},
	}}
	app := buildQueryApp(t, exec)

	resp := postQuery(t, app, dto.FreeQueryRequest{SQL: "SELECT product_id, name FROM products"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.TabularResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, []string{"product_id", "name"}, result.Columns)
	require.Len(t, result.Rows, 1)
}

// La consulta libre comparte la caché de proceso: repetir la misma petición
// dentro del TTL no vuelve al almacén.
func TestQueryLibre_ComparteCache(t *testing.T) {
	exec := &fakeExecutor{result: &dto.TabularResult{Columns: []string{"c"}, Rows: [][]any{{float64(7)}}}}
	app := buildQueryApp(t, exec)

	for i := 0; i < 3; i++ {
		resp := postQuery(t, app, dto.FreeQueryRequest{SQL: "SELECT COUNT(*) AS c FROM sales"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
	assert.Equal(t, 1, exec.calls, "las repeticiones dentro del TTL salen de la caché")
}

// Cuerpo sin SQL: 400 sin tocar el almacén.
func TestQueryLibre_SQLVacio(t *testing.T) {
	exec := &fakeExecutor{}
	app := buildQueryApp(t, exec)

	resp := postQuery(t, app, dto.FreeQueryRequest{SQL: "   "})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "EMPTY_QUERY", body.Code)
	assert.Zero(t, exec.calls, "una consulta vacía no debe llegar al almacén")
}
