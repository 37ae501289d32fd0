package dto

// FreeQueryRequest cuerpo de POST /api/query: SQL libre con parámetros
// posicionales opcionales ($1, $2, ...).
type FreeQueryRequest struct {
	SQL    string `json:"sql"`
	Params []any  `json:"params,omitempty"`
}
