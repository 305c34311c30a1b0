package workshop

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
	"github.com/jhoicas/Flota-api/internal/domain/workorder"
)

// RegistrarMovimientoUseCase registra entradas y ajustes manuales de stock de
// forma transaccional. Las salidas solo ocurren vía ConsumirRepuestoUseCase.
type RegistrarMovimientoUseCase struct {
	txRunner TxRunner
}

// NewRegistrarMovimientoUseCase construye el caso de uso.
func NewRegistrarMovimientoUseCase(txRunner TxRunner) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{txRunner: txRunner}
}

// MovimientoInput entrada para registrar un movimiento manual.
// Para entrada: Cantidad >= 1 y CostoUnitario obligatorio.
// Para ajuste: Cantidad != 0 (delta con signo), el stock satura en cero.
type MovimientoInput struct {
	RepuestoID    string
	Tipo          string // entrada, ajuste
	Cantidad      int
	CostoUnitario *decimal.Decimal
	Usuario       string
}

// Registrar valida, bloquea la fila del repuesto y aplica el movimiento.
func (uc *RegistrarMovimientoUseCase) Registrar(ctx context.Context, in MovimientoInput) error {
	switch in.Tipo {
	case entity.MovimientoEntrada:
		if in.RepuestoID == "" || in.Cantidad < 1 {
			return domain.ErrInvalidInput
		}
		if in.CostoUnitario == nil || in.CostoUnitario.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	case entity.MovimientoAjuste:
		if in.RepuestoID == "" || in.Cantidad == 0 {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}

	now := time.Now()
	txID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		_ repository.OrdenRepository,
		repuestoRepo repository.RepuestoRepository,
		movRepo repository.MovimientoRepository,
		_ repository.EquipoRepository,
		_ repository.ArregladaRepository,
	) error {
		repuesto, err := repuestoRepo.GetForUpdate(in.RepuestoID)
		if err != nil {
			return err
		}
		if repuesto == nil {
			return domain.ErrNotFound
		}

		disponible := workorder.StockDisponible(repuesto.Stock, repuesto.Cantidad)
		costoUnitario := repuesto.Costo

		if in.Tipo == entity.MovimientoEntrada {
			costoUnitario = *in.CostoUnitario
			nuevoCosto := workorder.CostoPromedio(disponible, repuesto.Costo, in.Cantidad, costoUnitario)
			if err := repuestoRepo.UpdateCosto(in.RepuestoID, nuevoCosto); err != nil {
				return err
			}
		}

		nuevo := disponible + in.Cantidad
		if nuevo < 0 {
			nuevo = 0
		}
		if err := repuestoRepo.SetStock(in.RepuestoID, nuevo); err != nil {
			return err
		}

		mov := &entity.Movimiento{
			ID:            uuid.New().String(),
			TransactionID: txID,
			RepuestoID:    in.RepuestoID,
			Tipo:          in.Tipo,
			Cantidad:      in.Cantidad,
			CostoUnitario: costoUnitario,
			Fecha:         now,
			Usuario:       in.Usuario,
		}
		return movRepo.Create(mov)
	})
}
