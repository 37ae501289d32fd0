// Package seed genera el dataset sintético que alimenta el dashboard.
// Toda la aleatoriedad sale de un único *rand.Rand con semilla fija, así que
// dos siembras sobre almacenes vacíos producen exactamente las mismas filas
// (módulo los identificadores que asigna el almacén).
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-bi/internal/domain/entity"
	"github.com/jhoicas/almacen-bi/internal/domain/repository"
)

// RandomSeed semilla fija del generador; misma que la aplicación original.
const RandomSeed = 42

// Volúmenes de cada etapa.
const (
	productTotal  = 100
	customerTotal = 200
	supplierTotal = 10
	saleTotal     = 5000
	orderTotal    = 400
	historyDays   = 365 // ventana de fechas: los últimos 365 días
)

// Summary filas generadas por etapa, para el log final del comando.
type Summary struct {
	Products  int
	Inventory int
	Customers int
	Suppliers int
	Sales     int
	Orders    int
}

// Seeder siembra el esquema etapa por etapa, en orden de dependencia.
// No protege contra re-siembra: correrlo sobre un almacén con datos duplica
// filas (eso lo guarda el comando, no el generador).
type Seeder struct {
	repo repository.SeedRepository
	rng  *prng
	now  time.Time
}

// New construye el seeder anclado a la fecha actual.
func New(repo repository.SeedRepository) *Seeder {
	return NewAt(repo, time.Now())
}

// NewAt ancla la ventana de fechas a now; con la misma fecha y la misma
// semilla el dataset es reproducible byte a byte.
func NewAt(repo repository.SeedRepository, now time.Time) *Seeder {
	return &Seeder{repo: repo, rng: newPRNG(RandomSeed), now: now}
}

// Run ejecuta las seis etapas. Cada inserción confirma por separado: un fallo
// intermedio se propaga y deja las etapas anteriores ya escritas.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	if err := s.repo.ApplySchema(ctx); err != nil {
		return nil, fmt.Errorf("etapa esquema: %w", err)
	}

	products := s.generateProducts()
	if err := s.repo.InsertProducts(ctx, products); err != nil {
		return nil, fmt.Errorf("etapa productos: %w", err)
	}
	productIDs, err := s.repo.ListProductIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar productos sembrados: %w", err)
	}
	if len(productIDs) == 0 {
		return nil, fmt.Errorf("el almacén no devolvió IDs de producto")
	}

	inventory := s.generateInventory(productIDs)
	if err := s.repo.InsertInventory(ctx, inventory); err != nil {
		return nil, fmt.Errorf("etapa inventario: %w", err)
	}

	customers := s.generateCustomers()
	if err := s.repo.InsertCustomers(ctx, customers); err != nil {
		return nil, fmt.Errorf("etapa clientes: %w", err)
	}
	suppliers := s.generateSuppliers()
	if err := s.repo.InsertSuppliers(ctx, suppliers); err != nil {
		return nil, fmt.Errorf("etapa proveedores: %w", err)
	}

	customerIDs, err := s.repo.ListCustomerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar clientes sembrados: %w", err)
	}
	supplierIDs, err := s.repo.ListSupplierIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores sembrados: %w", err)
	}
	if len(customerIDs) == 0 || len(supplierIDs) == 0 {
		return nil, fmt.Errorf("el almacén no devolvió IDs de clientes o proveedores")
	}

	sales := s.generateSales(productIDs, customerIDs)
	if err := s.repo.InsertSales(ctx, sales); err != nil {
		return nil, fmt.Errorf("etapa ventas: %w", err)
	}

	orders := s.generateOrders(supplierIDs, productIDs)
	if err := s.repo.InsertOrders(ctx, orders); err != nil {
		return nil, fmt.Errorf("etapa órdenes: %w", err)
	}

	return &Summary{
		Products:  len(products),
		Inventory: len(inventory),
		Customers: len(customers),
		Suppliers: len(suppliers),
		Sales:     len(sales),
		Orders:    len(orders),
	}, nil
}

func (s *Seeder) generateProducts() []entity.Product {
	products := make([]entity.Product, 0, productTotal)
	for i := 0; i < productTotal; i++ {
		products = append(products, entity.Product{
			Name:     fmt.Sprintf("Producto %d", i+1),
			Category: entity.Categories[s.rng.Intn(len(entity.Categories))],
			// Precio uniforme en [5.00, 500.00] con 2 decimales exactos
			Price:        decimal.New(int64(500+s.rng.Intn(49501)), -2),
			ReorderLevel: 5 + s.rng.Intn(36), // [5, 40]
		})
	}
	return products
}

func (s *Seeder) generateInventory(productIDs []int64) []entity.Inventory {
	rows := make([]entity.Inventory, 0, len(productIDs))
	for _, id := range productIDs {
		rows = append(rows, entity.Inventory{
			ProductID:         id,
			QuantityInStock:   s.rng.Intn(201), // [0, 200]
			WarehouseLocation: fmt.Sprintf("A%d-R%d", 1+s.rng.Intn(10), 1+s.rng.Intn(20)),
		})
	}
	return rows
}

func (s *Seeder) generateCustomers() []entity.Customer {
	customers := make([]entity.Customer, 0, customerTotal)
	for i := 0; i < customerTotal; i++ {
		customers = append(customers, entity.Customer{Name: s.rng.personName()})
	}
	return customers
}

func (s *Seeder) generateSuppliers() []entity.Supplier {
	suppliers := make([]entity.Supplier, 0, supplierTotal)
	for i := 0; i < supplierTotal; i++ {
		suppliers = append(suppliers, entity.Supplier{
			Name:        s.rng.companyName(),
			ContactInfo: s.rng.phoneNumber(),
		})
	}
	return suppliers
}

func (s *Seeder) generateSales(productIDs, customerIDs []int64) []entity.Sale {
	start := s.windowStart()
	sales := make([]entity.Sale, 0, saleTotal)
	for i := 0; i < saleTotal; i++ {
		sales = append(sales, entity.Sale{
			ProductID:    productIDs[s.rng.Intn(len(productIDs))],
			CustomerID:   customerIDs[s.rng.Intn(len(customerIDs))],
			QuantitySold: 1 + s.rng.Intn(8), // [1, 8]
			SaleDate:     start.AddDate(0, 0, s.rng.Intn(historyDays+1)),
		})
	}
	return sales
}

func (s *Seeder) generateOrders(supplierIDs, productIDs []int64) []entity.PurchaseOrder {
	start := s.windowStart()
	orders := make([]entity.PurchaseOrder, 0, orderTotal)
	for i := 0; i < orderTotal; i++ {
		orders = append(orders, entity.PurchaseOrder{
			SupplierID:      supplierIDs[s.rng.Intn(len(supplierIDs))],
			ProductID:       productIDs[s.rng.Intn(len(productIDs))],
			OrderDate:       start.AddDate(0, 0, s.rng.Intn(historyDays+1)),
			QuantityOrdered: 10 + s.rng.Intn(141), // [10, 150]
			Status:          entity.OrderStatuses[s.rng.Intn(len(entity.OrderStatuses))],
		})
	}
	return orders
}

// windowStart devuelve la medianoche UTC de hace historyDays días.
func (s *Seeder) windowStart() time.Time {
	day := time.Date(s.now.Year(), s.now.Month(), s.now.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -historyDays)
}
