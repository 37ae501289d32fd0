package entity

// Supplier proveedor de órdenes de compra.
type Supplier struct {
	ID          int64
	Name        string
	ContactInfo string // teléfono de contacto
}
