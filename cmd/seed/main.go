// seed puebla el esquema del dashboard con el dataset sintético determinista
// (100 productos, inventario, 200 clientes, 10 proveedores, 5000 ventas,
// 400 órdenes de compra).
//
// Uso: go run ./cmd/seed [--force]
// Sin --force se niega a correr sobre un almacén que ya tiene productos:
// las inserciones son append-only y una re-siembra duplicaría filas.
package main

import (
	"context"
	"os"

	"github.com/jhoicas/almacen-bi/internal/application/seed"
	"github.com/jhoicas/almacen-bi/internal/domain"
	"github.com/jhoicas/almacen-bi/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-bi/pkg/config"
	"github.com/jhoicas/almacen-bi/pkg/logger"
)

func main() {
	force := len(os.Args) > 1 && os.Args[1] == "--force"

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewSeedRepository(pool)

	if !force {
		n, err := repo.CountProducts(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("verificar estado del almacén")
		}
		if n > 0 {
			log.Fatal().
				Err(domain.ErrStoreNotEmpty).
				Int64("productos_existentes", n).
				Msg("use --force para sembrar de todas formas (duplica filas)")
		}
	}

	log.Info().Int64("semilla", seed.RandomSeed).Msg("iniciando siembra")

	summary, err := seed.New(repo).Run(ctx)
	if err != nil {
		// Sin rollback entre etapas: lo ya confirmado queda en el almacén
		log.Fatal().Err(err).Msg("siembra interrumpida; el almacén puede quedar parcialmente poblado")
	}

	log.Info().
		Int("productos", summary.Products).
		Int("inventario", summary.Inventory).
		Int("clientes", summary.Customers).
		Int("proveedores", summary.Suppliers).
		Int("ventas", summary.Sales).
		Int("ordenes", summary.Orders).
		Msg("siembra completada")
}
