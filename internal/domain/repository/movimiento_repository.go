package repository

import "github.com/jhoicas/Flota-api/internal/domain/entity"

// MovimientoRepository define el puerto de persistencia para la bitácora de
// movimientos de stock.
type MovimientoRepository interface {
	Create(movimiento *entity.Movimiento) error
	ListByRepuesto(repuestoID string, limit, offset int) ([]*entity.Movimiento, error)
}
