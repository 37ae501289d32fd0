package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/almacen-bi/internal/domain/entity"
	"github.com/jhoicas/almacen-bi/internal/domain/repository"
)

//go:embed migrations/001_schema.sql
var schemaSQL string

var _ repository.SeedRepository = (*SeedRepo)(nil)

// SeedRepo implementación de SeedRepository sobre PostgreSQL.
// Cada Insert* envía un pgx.Batch dentro de su propia transacción y hace
// commit independiente; un fallo deja las etapas anteriores ya confirmadas.
type SeedRepo struct {
	pool *pgxpool.Pool
}

// NewSeedRepository construye el adaptador de siembra.
func NewSeedRepository(pool *pgxpool.Pool) *SeedRepo {
	return &SeedRepo{pool: pool}
}

// ApplySchema ejecuta el script embebido de definición del esquema.
// Usa el protocolo simple de pgconn porque el script tiene varias sentencias.
func (r *SeedRepo) ApplySchema(ctx context.Context) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("adquirir conexión: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Conn().PgConn().Exec(ctx, schemaSQL).ReadAll(); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}

// CountProducts devuelve cuántos productos hay ya sembrados. El comando de
// siembra lo usa para negarse a duplicar datos sin un --force explícito.
func (r *SeedRepo) CountProducts(ctx context.Context) (int64, error) {
	// to_regclass: la tabla puede no existir aún en un almacén virgen
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT to_regclass('products') IS NOT NULL`).Scan(&exists); err != nil {
		return 0, fmt.Errorf("verificar tabla products: %w", err)
	}
	if !exists {
		return 0, nil
	}

	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("contar productos: %w", err)
	}
	return n, nil
}

func (r *SeedRepo) InsertProducts(ctx context.Context, products []entity.Product) error {
	b := &pgx.Batch{}
	for _, p := range products {
		b.Queue(
			`INSERT INTO products (name, category, price, reorder_level) VALUES ($1, $2, $3, $4)`,
			p.Name, p.Category, p.Price, p.ReorderLevel,
		)
	}
	return r.sendBatch(ctx, "products", b)
}

func (r *SeedRepo) InsertInventory(ctx context.Context, rows []entity.Inventory) error {
	b := &pgx.Batch{}
	for _, row := range rows {
		b.Queue(
			`INSERT INTO inventory (product_id, quantity_in_stock, warehouse_location) VALUES ($1, $2, $3)`,
			row.ProductID, row.QuantityInStock, row.WarehouseLocation,
		)
	}
	return r.sendBatch(ctx, "inventory", b)
}

func (r *SeedRepo) InsertCustomers(ctx context.Context, customers []entity.Customer) error {
	b := &pgx.Batch{}
	for _, c := range customers {
		b.Queue(`INSERT INTO customers (name) VALUES ($1)`, c.Name)
	}
	return r.sendBatch(ctx, "customers", b)
}

func (r *SeedRepo) InsertSuppliers(ctx context.Context, suppliers []entity.Supplier) error {
	b := &pgx.Batch{}
	for _, s := range suppliers {
		b.Queue(`INSERT INTO suppliers (name, contact_info) VALUES ($1, $2)`, s.Name, s.ContactInfo)
	}
	return r.sendBatch(ctx, "suppliers", b)
}

func (r *SeedRepo) InsertSales(ctx context.Context, sales []entity.Sale) error {
	b := &pgx.Batch{}
	for _, s := range sales {
		b.Queue(
			`INSERT INTO sales (product_id, customer_id, quantity_sold, sale_date) VALUES ($1, $2, $3, $4)`,
			s.ProductID, s.CustomerID, s.QuantitySold, s.SaleDate,
		)
	}
	return r.sendBatch(ctx, "sales", b)
}

func (r *SeedRepo) InsertOrders(ctx context.Context, orders []entity.PurchaseOrder) error {
	b := &pgx.Batch{}
	for _, o := range orders {
		b.Queue(
			`INSERT INTO orders (supplier_id, product_id, order_date, quantity_ordered, status) VALUES ($1, $2, $3, $4, $5)`,
			o.SupplierID, o.ProductID, o.OrderDate, o.QuantityOrdered, string(o.Status),
		)
	}
	return r.sendBatch(ctx, "orders", b)
}

func (r *SeedRepo) ListProductIDs(ctx context.Context) ([]int64, error) {
	return r.listIDs(ctx, `SELECT product_id FROM products ORDER BY product_id`)
}

func (r *SeedRepo) ListCustomerIDs(ctx context.Context) ([]int64, error) {
	return r.listIDs(ctx, `SELECT customer_id FROM customers ORDER BY customer_id`)
}

func (r *SeedRepo) ListSupplierIDs(ctx context.Context) ([]int64, error) {
	return r.listIDs(ctx, `SELECT supplier_id FROM suppliers ORDER BY supplier_id`)
}

// sendBatch ejecuta el batch dentro de una transacción propia (commit por etapa).
func (r *SeedRepo) sendBatch(ctx context.Context, table string, b *pgx.Batch) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction (%s): %w", table, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.SendBatch(ctx, b).Close(); err != nil {
		return fmt.Errorf("insertar %s: %w", table, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction (%s): %w", table, err)
	}
	return nil
}

func (r *SeedRepo) listIDs(ctx context.Context, query string) ([]int64, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
