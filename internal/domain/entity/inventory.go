package entity

// Inventory nivel de stock de un producto. Invariante del esquema:
// exactamente una fila por producto.
type Inventory struct {
	ProductID         int64
	QuantityInStock   int    // nunca negativo
	WarehouseLocation string // código de posición libre, ej. "A3-R17"
}
