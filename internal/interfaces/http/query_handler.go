package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-bi/internal/application/dto"
	"github.com/jhoicas/almacen-bi/internal/application/query"
	"github.com/jhoicas/almacen-bi/internal/domain"
)

// QueryHandler modo de consulta libre del dashboard: ejecuta SQL arbitrario
// enviado por el usuario y devuelve la tabla de resultados o el mensaje de
// error, sin tumbar el proceso.
//
// ADVERTENCIA: no se restringe el tipo de sentencia; el SQL corre con los
// privilegios de la credencial configurada. Desplegar con un rol de solo
// lectura. Los resultados entran en la caché de proceso compartida, como
// cualquier otra consulta.
type QueryHandler struct {
	svc *query.CachedService
}

// NewQueryHandler construye el handler.
func NewQueryHandler(svc *query.CachedService) *QueryHandler {
	return &QueryHandler{svc: svc}
}

// Run ejecuta la consulta del cuerpo de la petición.
// POST /api/query  {"sql": "...", "params": [...]}
//
// Cualquier fallo de ejecución (SQL malformado, fallo de conexión) se
// convierte en un 400 con el mensaje visible; el proceso sigue vivo.
func (h *QueryHandler) Run(c *fiber.Ctx) error {
	var req dto.FreeQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo JSON inválido: " + err.Error(),
		})
	}
	result, err := h.svc.Query(c.Context(), req.SQL, req.Params...)
	if errors.Is(err, domain.ErrEmptyQuery) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "EMPTY_QUERY", Message: err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "QUERY_FAILED", Message: err.Error(),
		})
	}
	return c.JSON(result)
}
