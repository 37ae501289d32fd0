package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrEmptyQuery la sentencia de consulta libre vino vacía.
	ErrEmptyQuery = errors.New("consulta SQL vacía")
	// ErrStoreNotEmpty el almacén ya contiene datos y la siembra duplicaría filas.
	ErrStoreNotEmpty = errors.New("el almacén ya contiene datos")
)
