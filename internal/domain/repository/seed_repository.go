package repository

import (
	"context"

	"github.com/jhoicas/almacen-bi/internal/domain/entity"
)

// SeedRepository contrato de escritura que usa el seeder para poblar el
// esquema. Cada método de inserción corre en su propia transacción y hace
// commit independiente: un fallo a mitad de secuencia deja el almacén
// parcialmente sembrado (sin rollback entre etapas, igual que la fuente).
//
// Los listados de IDs devuelven los identificadores realmente asignados por
// el almacén, en orden ascendente, para que la etapa siguiente referencie
// filas existentes.
type SeedRepository interface {
	// ApplySchema ejecuta el script de definición del esquema. No es
	// idempotente más allá de lo que el propio script garantice.
	ApplySchema(ctx context.Context) error

	CountProducts(ctx context.Context) (int64, error)

	InsertProducts(ctx context.Context, products []entity.Product) error
	InsertInventory(ctx context.Context, rows []entity.Inventory) error
	InsertCustomers(ctx context.Context, customers []entity.Customer) error
	InsertSuppliers(ctx context.Context, suppliers []entity.Supplier) error
	InsertSales(ctx context.Context, sales []entity.Sale) error
	InsertOrders(ctx context.Context, orders []entity.PurchaseOrder) error

	ListProductIDs(ctx context.Context) ([]int64, error)
	ListCustomerIDs(ctx context.Context) ([]int64, error)
	ListSupplierIDs(ctx context.Context) ([]int64, error)
}
