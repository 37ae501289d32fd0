package entity

import "time"

// Sale una venta puntual. Varias ventas pueden referenciar el mismo
// producto y cliente.
type Sale struct {
	ProductID    int64
	CustomerID   int64
	QuantitySold int // siempre positivo
	SaleDate     time.Time
}
