package workshop

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
	"github.com/jhoicas/Flota-api/internal/domain/workorder"
)

// ConsumirRepuestoUseCase registra el consumo de un repuesto en una orden de
// trabajo y decrementa su stock. Ambas escrituras (línea de consumo y stock)
// más el movimiento de auditoría ocurren en una sola transacción con bloqueo
// de fila (SELECT FOR UPDATE) sobre el repuesto.
type ConsumirRepuestoUseCase struct {
	txRunner TxRunner
}

// NewConsumirRepuestoUseCase construye el caso de uso.
func NewConsumirRepuestoUseCase(txRunner TxRunner) *ConsumirRepuestoUseCase {
	return &ConsumirRepuestoUseCase{txRunner: txRunner}
}

// ConsumoInput entrada para consumir un repuesto desde una orden.
type ConsumoInput struct {
	OrdenID    string
	RepuestoID string
	Nombre     string // opcional; si falta se usa el nombre del repuesto
	Cantidad   int
	Usuario    string
}

// Consumir valida stock disponible, agrega (o acumula) la línea de consumo en
// la orden y escribe el nuevo stock en ambos campos aliasados.
//
// Regla de admisión con línea existente: se compara el consumo ya registrado
// contra el stock vivo (existente >= disponible rechaza), no el delta
// solicitado. Los clientes dependen de esta regla; no cambiarla sin
// coordinar con ellos.
func (uc *ConsumirRepuestoUseCase) Consumir(ctx context.Context, in ConsumoInput) error {
	if in.OrdenID == "" || in.RepuestoID == "" || in.Cantidad < 1 {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	txID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		ordenRepo repository.OrdenRepository,
		repuestoRepo repository.RepuestoRepository,
		movRepo repository.MovimientoRepository,
		_ repository.EquipoRepository,
		_ repository.ArregladaRepository,
	) error {
		// Bloquea la fila del repuesto antes de leer la orden: la lista de
		// consumos debe leerse con el bloqueo ya tomado para que las líneas
		// confirmadas por otra transacción durante la espera sean visibles.
		repuesto, err := repuestoRepo.GetForUpdate(in.RepuestoID)
		if err != nil {
			return err
		}
		if repuesto == nil {
			return domain.ErrNotFound
		}

		orden, err := ordenRepo.GetByID(in.OrdenID)
		if err != nil {
			return err
		}
		if orden == nil {
			return domain.ErrNotFound
		}
		if workorder.EsTerminal(orden.Estado) {
			return domain.ErrOrdenCerrada
		}

		disponible := workorder.StockDisponible(repuesto.Stock, repuesto.Cantidad)

		var existente *entity.OrdenRepuesto
		for i := range orden.Repuestos {
			if orden.Repuestos[i].RepuestoID == in.RepuestoID {
				existente = &orden.Repuestos[i]
				break
			}
		}
		if existente != nil {
			if existente.Cantidad >= disponible {
				return domain.ErrInsufficientStock
			}
		} else if disponible <= 0 {
			return domain.ErrInsufficientStock
		}

		nombre := in.Nombre
		if nombre == "" {
			nombre = repuesto.Nombre
		}
		linea := entity.OrdenRepuesto{RepuestoID: in.RepuestoID, Nombre: nombre, Cantidad: in.Cantidad}
		if existente != nil {
			linea.Cantidad = existente.Cantidad + in.Cantidad
			linea.Posicion = existente.Posicion
		} else {
			linea.Posicion = len(orden.Repuestos)
		}
		if err := ordenRepo.UpsertRepuesto(in.OrdenID, linea); err != nil {
			return err
		}

		if err := repuestoRepo.SetStock(in.RepuestoID, workorder.NuevoStock(disponible, in.Cantidad)); err != nil {
			return err
		}

		mov := &entity.Movimiento{
			ID:            uuid.New().String(),
			TransactionID: txID,
			RepuestoID:    in.RepuestoID,
			OrdenID:       in.OrdenID,
			Tipo:          entity.MovimientoSalida,
			Cantidad:      -in.Cantidad,
			CostoUnitario: repuesto.Costo,
			Fecha:         now,
			Usuario:       in.Usuario,
		}
		return movRepo.Create(mov)
	})

	switch {
	case err == nil:
		consumosTotal.WithLabelValues("ok").Inc()
	case errors.Is(err, domain.ErrInsufficientStock):
		consumosTotal.WithLabelValues("stock_insuficiente").Inc()
	default:
		consumosTotal.WithLabelValues("error").Inc()
	}
	return err
}
