package entity

import "github.com/shopspring/decimal"

// Categorías válidas de producto. El seeder y los pivotes del dashboard
// trabajan siempre sobre este conjunto cerrado.
var Categories = []string{"Alimentos", "Aseo", "Electrónica", "Papelería", "Ropa"}

// Product representa un producto del catálogo. Inmutable una vez sembrado:
// este sistema solo lo lee para analítica.
type Product struct {
	ID           int64
	Name         string
	Category     string
	Price        decimal.Decimal // precio de venta, 2 decimales
	ReorderLevel int             // umbral de reposición: stock < ReorderLevel ⇒ producto bajo
}
