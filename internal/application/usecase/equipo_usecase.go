package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/application/workshop"
	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// EquipoUseCase operaciones CRUD sobre la flota. El borrado arrastra las
// órdenes del equipo en la misma transacción: es la única vía por la que una
// orden se elimina.
type EquipoUseCase struct {
	equipoRepo repository.EquipoRepository
	txRunner   workshop.TxRunner
}

// NewEquipoUseCase construye el caso de uso.
func NewEquipoUseCase(equipoRepo repository.EquipoRepository, txRunner workshop.TxRunner) *EquipoUseCase {
	return &EquipoUseCase{equipoRepo: equipoRepo, txRunner: txRunner}
}

// Create da de alta un equipo operativo y disponible.
func (uc *EquipoUseCase) Create(in dto.CreateEquipoRequest) (*dto.EquipoResponse, error) {
	if in.Numero == "" || in.Modelo == "" || in.Kilometraje < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	equipo := &entity.Equipo{
		ID:              uuid.New().String(),
		Numero:          in.Numero,
		Modelo:          in.Modelo,
		Kilometraje:     in.Kilometraje,
		EstadoOperativo: entity.EquipoOperativo,
		Disponibilidad:  entity.DisponibilidadDisponible,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.equipoRepo.Create(equipo); err != nil {
		return nil, err
	}
	return toEquipoResponse(equipo), nil
}

// GetByID devuelve un equipo o ErrNotFound.
func (uc *EquipoUseCase) GetByID(id string) (*dto.EquipoResponse, error) {
	equipo, err := uc.equipoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if equipo == nil {
		return nil, domain.ErrNotFound
	}
	return toEquipoResponse(equipo), nil
}

// List devuelve los equipos paginados.
func (uc *EquipoUseCase) List(page dto.PageRequest) ([]*dto.EquipoResponse, error) {
	page.DefaultPage()
	equipos, err := uc.equipoRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EquipoResponse, 0, len(equipos))
	for _, e := range equipos {
		out = append(out, toEquipoResponse(e))
	}
	return out, nil
}

// Update modifica los datos de un equipo.
func (uc *EquipoUseCase) Update(id string, in dto.UpdateEquipoRequest) (*dto.EquipoResponse, error) {
	if in.Numero == "" || in.Modelo == "" || in.Kilometraje < 0 {
		return nil, domain.ErrInvalidInput
	}
	equipo, err := uc.equipoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if equipo == nil {
		return nil, domain.ErrNotFound
	}
	equipo.Numero = in.Numero
	equipo.Modelo = in.Modelo
	equipo.Kilometraje = in.Kilometraje
	if in.EstadoOperativo != "" {
		equipo.EstadoOperativo = in.EstadoOperativo
	}
	if in.Disponibilidad != "" {
		equipo.Disponibilidad = in.Disponibilidad
	}
	equipo.UpdatedAt = time.Now()
	if err := uc.equipoRepo.Update(equipo); err != nil {
		return nil, err
	}
	return toEquipoResponse(equipo), nil
}

// Delete elimina el equipo y, en cascada, sus órdenes (misma transacción).
func (uc *EquipoUseCase) Delete(ctx context.Context, id string) error {
	equipo, err := uc.equipoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if equipo == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		ordenRepo repository.OrdenRepository,
		_ repository.RepuestoRepository,
		_ repository.MovimientoRepository,
		equipoRepo repository.EquipoRepository,
		_ repository.ArregladaRepository,
	) error {
		if err := ordenRepo.DeleteByEquipo(id); err != nil {
			return err
		}
		return equipoRepo.Delete(id)
	})
}

func toEquipoResponse(e *entity.Equipo) *dto.EquipoResponse {
	return &dto.EquipoResponse{
		ID:                       e.ID,
		Numero:                   e.Numero,
		Modelo:                   e.Modelo,
		Kilometraje:              e.Kilometraje,
		EstadoOperativo:          e.EstadoOperativo,
		Disponibilidad:           e.Disponibilidad,
		FechaUltimoMantenimiento: e.FechaUltimoMantenimiento,
		ProximoMantenimiento:     e.ProximoMantenimiento,
		CreatedAt:                e.CreatedAt,
		UpdatedAt:                e.UpdatedAt,
	}
}
