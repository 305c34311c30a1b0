package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del puerto MovimientoRepository sobre PostgreSQL (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *MovimientoRepo) Create(mov *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, transaction_id, repuesto_id, orden_id, tipo, cantidad, costo_unitario, fecha, usuario)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.TransactionID, mov.RepuestoID, mov.OrdenID,
		mov.Tipo, mov.Cantidad, mov.CostoUnitario, mov.Fecha, mov.Usuario,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListByRepuesto devuelve la bitácora de un repuesto, lo más reciente primero.
func (r *MovimientoRepo) ListByRepuesto(repuestoID string, limit, offset int) ([]*entity.Movimiento, error) {
	query := `
		SELECT id, transaction_id, repuesto_id, COALESCE(orden_id::text, ''), tipo, cantidad, costo_unitario, fecha, usuario
		FROM movimientos WHERE repuesto_id = $1 ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, repuestoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		if err := rows.Scan(
			&m.ID, &m.TransactionID, &m.RepuestoID, &m.OrdenID,
			&m.Tipo, &m.Cantidad, &m.CostoUnitario, &m.Fecha, &m.Usuario,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
