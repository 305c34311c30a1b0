package workshop

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
	"github.com/jhoicas/Flota-api/internal/domain/workorder"
)

// CambiarEstadoUseCase aplica transiciones de estado sobre órdenes de trabajo
// con sus efectos en cascada: historial, actualización del equipo y creación
// del registro arreglada para fallas completadas. Todo en una transacción.
type CambiarEstadoUseCase struct {
	txRunner TxRunner
}

// NewCambiarEstadoUseCase construye el caso de uso.
func NewCambiarEstadoUseCase(txRunner TxRunner) *CambiarEstadoUseCase {
	return &CambiarEstadoUseCase{txRunner: txRunner}
}

// CambioEstadoInput entrada para una transición de estado.
type CambioEstadoInput struct {
	OrdenID     string
	NuevoEstado string
	Usuario     string
	Rol         string
	Comentario  string
}

var estadosValidos = map[string]bool{
	entity.EstadoPendiente:  true,
	entity.EstadoEnProceso:  true,
	entity.EstadoCompletada: true,
	entity.EstadoCancelada:  true,
}

// Cambiar valida la transición contra la tabla estática, agrega exactamente
// una entrada al historial y, al completar, ejecuta la cascada sobre el
// equipo y (para fallas) crea la arreglada.
func (uc *CambiarEstadoUseCase) Cambiar(ctx context.Context, in CambioEstadoInput) error {
	if in.OrdenID == "" || !estadosValidos[in.NuevoEstado] {
		return domain.ErrInvalidInput
	}

	now := time.Now()

	err := uc.txRunner.Run(ctx, func(
		ordenRepo repository.OrdenRepository,
		_ repository.RepuestoRepository,
		_ repository.MovimientoRepository,
		equipoRepo repository.EquipoRepository,
		arregladaRepo repository.ArregladaRepository,
	) error {
		orden, err := ordenRepo.GetByID(in.OrdenID)
		if err != nil {
			return err
		}
		if orden == nil {
			return domain.ErrNotFound
		}
		if !workorder.PuedeTransicionar(orden.Clase, orden.Estado, in.NuevoEstado) {
			return domain.ErrInvalidTransition
		}
		// El rol se verifica después de la existencia y la tabla de
		// transiciones: cancelar una orden inexistente responde 404, no 403.
		if in.NuevoEstado == entity.EstadoCancelada && !entity.RolTiene(in.Rol, entity.CapCancelarFalla) {
			return domain.ErrForbidden
		}

		if err := ordenRepo.UpdateEstado(in.OrdenID, in.NuevoEstado); err != nil {
			return err
		}
		entrada := entity.HistorialEntrada{
			Estado:     in.NuevoEstado,
			Fecha:      now,
			Usuario:    in.Usuario,
			Comentario: in.Comentario,
		}
		if err := ordenRepo.AppendHistorial(in.OrdenID, entrada); err != nil {
			return err
		}

		if in.NuevoEstado != entity.EstadoCompletada {
			return nil
		}

		// Cascada de cierre: sincroniza el equipo y agenda el próximo mantenimiento
		if orden.EquipoID != "" {
			equipo, err := equipoRepo.GetByID(orden.EquipoID)
			if err != nil {
				return err
			}
			if equipo == nil {
				// La orden apunta a un equipo borrado; se completa igual
				log.Warn().Str("orden_id", orden.ID).Str("equipo_id", orden.EquipoID).
					Msg("equipo de la orden no existe, se omite la cascada")
			} else {
				proximo := workorder.ProximoMantenimiento(orden.Tipo, now)
				if err := equipoRepo.ActualizarTrasMantenimiento(
					orden.EquipoID, orden.Kilometraje, now, proximo, entity.EquipoOperativo,
				); err != nil {
					return err
				}
			}
		}

		// Falla completada: copia archivada inmutable con el snapshot de repuestos
		if orden.Clase == entity.ClaseFalla {
			arreglada := &entity.Arreglada{
				ID:          uuid.New().String(),
				OrdenID:     orden.ID,
				Equipo:      orden.Equipo,
				Descripcion: orden.Descripcion,
				Mecanico:    orden.Mecanico,
				Repuestos:   orden.Repuestos,
				Fecha:       now,
			}
			if err := arregladaRepo.Create(arreglada); err != nil {
				return err
			}
		}
		return nil
	})

	switch {
	case err == nil:
		transicionesTotal.WithLabelValues(in.NuevoEstado, "ok").Inc()
	case errors.Is(err, domain.ErrInvalidTransition):
		transicionesTotal.WithLabelValues(in.NuevoEstado, "transicion_invalida").Inc()
	default:
		transicionesTotal.WithLabelValues(in.NuevoEstado, "error").Inc()
	}
	return err
}
