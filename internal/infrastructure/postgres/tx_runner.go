package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Flota-api/internal/application/workshop"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// Ensure TxRunner implements workshop.TxRunner.
var _ workshop.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ordenRepo repository.OrdenRepository,
	repuestoRepo repository.RepuestoRepository,
	movRepo repository.MovimientoRepository,
	equipoRepo repository.EquipoRepository,
	arregladaRepo repository.ArregladaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ordenRepo := NewOrdenRepository(tx)
	repuestoRepo := NewRepuestoRepository(tx)
	movRepo := NewMovimientoRepository(tx)
	equipoRepo := NewEquipoRepository(tx)
	arregladaRepo := NewArregladaRepository(tx)

	if err := fn(ordenRepo, repuestoRepo, movRepo, equipoRepo, arregladaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
