package workshop

import (
	"context"

	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el registro de consumo en la
// orden y el decremento de stock se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ordenRepo repository.OrdenRepository,
		repuestoRepo repository.RepuestoRepository,
		movRepo repository.MovimientoRepository,
		equipoRepo repository.EquipoRepository,
		arregladaRepo repository.ArregladaRepository,
	) error) error
}
