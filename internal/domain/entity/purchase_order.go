package entity

import "time"

// OrderStatus estado de una orden de compra.
type OrderStatus string

const (
	OrderPending  OrderStatus = "pending"
	OrderShipped  OrderStatus = "shipped"
	OrderReceived OrderStatus = "received"
)

// OrderStatuses todos los estados válidos, en el orden del enum del esquema.
var OrderStatuses = []OrderStatus{OrderPending, OrderShipped, OrderReceived}

// PurchaseOrder orden de compra a un proveedor.
type PurchaseOrder struct {
	SupplierID      int64
	ProductID       int64
	OrderDate       time.Time
	QuantityOrdered int
	Status          OrderStatus
}
