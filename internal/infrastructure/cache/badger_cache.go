// Package cache implementa la caché de resultados sobre BadgerDB en modo
// memoria. La entrada lleva su propio vencimiento en nanosegundos porque el
// TTL nativo de Badger tiene granularidad de segundo; el TTL de Badger se
// usa solo como recolección de entradas muertas.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/jhoicas/almacen-bi/internal/application/dto"
	"github.com/jhoicas/almacen-bi/internal/application/ports"
)

var _ ports.ResultCache = (*ResultCache)(nil)

// ResultCache caché de proceso para snapshots tabulares. Las entradas son
// inmutables una vez escritas; una carrera en el primer acceso produce a lo
// sumo consultas redundantes, nunca resultados corruptos.
type ResultCache struct {
	db *badger.DB
}

// envelope lo que se persiste por clave: el snapshot y su vencimiento.
type envelope struct {
	ExpiresAt int64              `json:"expires_at"` // unix nanos
	Result    *dto.TabularResult `json:"result"`
}

// NewInMemory abre una instancia Badger sin persistencia en disco. La caché
// vive y muere con el proceso, igual que la de la aplicación original.
func NewInMemory() (*ResultCache, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("abrir caché badger: %w", err)
	}
	return &ResultCache{db: db}, nil
}

// Close libera la instancia Badger.
func (c *ResultCache) Close() error {
	return c.db.Close()
}

// GetOrCompute devuelve la entrada vigente para key o ejecuta compute y
// guarda su resultado con el TTL indicado. En ambos caminos el valor devuelto
// es la copia decodificada del snapshot JSON, de modo que hit y miss entregan
// exactamente la misma representación. Los errores de compute se propagan y
// no dejan entrada.
func (c *ResultCache) GetOrCompute(
	ctx context.Context,
	key string,
	ttl time.Duration,
	compute func(ctx context.Context) (*dto.TabularResult, error),
) (*dto.TabularResult, error) {
	var raw []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	switch {
	case err == nil:
		env, err := decode(raw)
		if err != nil {
			return nil, err
		}
		if time.Now().UnixNano() < env.ExpiresAt {
			return env.Result, nil
		}
		// Vencida: se recalcula y se sobrescribe
	case !errors.Is(err, badger.ErrKeyNotFound):
		return nil, fmt.Errorf("leer caché: %w", err)
	}

	result, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		return result, nil
	}

	buf, err := json.Marshal(envelope{
		ExpiresAt: time.Now().Add(ttl).UnixNano(),
		Result:    result,
	})
	if err != nil {
		return nil, fmt.Errorf("serializar resultado: %w", err)
	}

	// TTL de Badger redondeado hacia arriba: solo limpia, nunca corta antes
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(key), buf).WithTTL(ttl.Round(time.Second) + 2*time.Second))
	})
	if err != nil {
		return nil, fmt.Errorf("escribir caché: %w", err)
	}

	env, err := decode(buf)
	if err != nil {
		return nil, err
	}
	return env.Result, nil
}

func decode(raw []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decodificar snapshot de caché: %w", err)
	}
	return &env, nil
}
