package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// OrdenUseCase creación y consulta de órdenes de trabajo. Las mutaciones de
// estado y de repuestos pasan por el paquete workshop, no por aquí.
type OrdenUseCase struct {
	ordenRepo  repository.OrdenRepository
	equipoRepo repository.EquipoRepository
}

// NewOrdenUseCase construye el caso de uso.
func NewOrdenUseCase(ordenRepo repository.OrdenRepository, equipoRepo repository.EquipoRepository) *OrdenUseCase {
	return &OrdenUseCase{ordenRepo: ordenRepo, equipoRepo: equipoRepo}
}

var clasesValidas = map[string]bool{
	entity.ClaseMantenimiento: true,
	entity.ClaseFalla:         true,
}

var tiposValidos = map[string]bool{
	entity.TipoPreventivo: true,
	entity.TipoCorrectivo: true,
}

// Create registra una orden en estado pendiente y siembra la primera entrada
// del historial. Si trae equipo, denormaliza su etiqueta para listados.
func (uc *OrdenUseCase) Create(in dto.CreateOrdenRequest, usuario string) (*dto.OrdenResponse, error) {
	if !clasesValidas[in.Clase] || !tiposValidos[in.Tipo] || in.Descripcion == "" || in.Kilometraje < 0 {
		return nil, domain.ErrInvalidInput
	}

	etiqueta := ""
	if in.EquipoID != "" {
		equipo, err := uc.equipoRepo.GetByID(in.EquipoID)
		if err != nil {
			return nil, err
		}
		if equipo == nil {
			return nil, domain.ErrNotFound
		}
		etiqueta = equipo.Numero + " " + equipo.Modelo
	}

	now := time.Now()
	orden := &entity.Orden{
		ID:          uuid.New().String(),
		Clase:       in.Clase,
		Tipo:        in.Tipo,
		EquipoID:    in.EquipoID,
		Equipo:      etiqueta,
		Descripcion: in.Descripcion,
		Fecha:       now,
		Kilometraje: in.Kilometraje,
		Mecanico:    in.Mecanico,
		Estado:      entity.EstadoPendiente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.ordenRepo.Create(orden); err != nil {
		return nil, err
	}
	entrada := entity.HistorialEntrada{Estado: entity.EstadoPendiente, Fecha: now, Usuario: usuario}
	if err := uc.ordenRepo.AppendHistorial(orden.ID, entrada); err != nil {
		return nil, err
	}
	orden.Historial = []entity.HistorialEntrada{entrada}
	return toOrdenResponse(orden), nil
}

// GetByID devuelve la orden con repuestos e historial, o ErrNotFound.
func (uc *OrdenUseCase) GetByID(id string) (*dto.OrdenResponse, error) {
	orden, err := uc.ordenRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNotFound
	}
	return toOrdenResponse(orden), nil
}

// List devuelve órdenes filtradas por clase, estado o equipo.
func (uc *OrdenUseCase) List(filtro repository.OrdenFiltro, page dto.PageRequest) ([]*dto.OrdenResponse, error) {
	page.DefaultPage()
	ordenes, err := uc.ordenRepo.List(filtro, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrdenResponse, 0, len(ordenes))
	for _, o := range ordenes {
		out = append(out, toOrdenResponse(o))
	}
	return out, nil
}

func toOrdenResponse(o *entity.Orden) *dto.OrdenResponse {
	repuestos := make([]dto.OrdenRepuestoDTO, 0, len(o.Repuestos))
	for _, r := range o.Repuestos {
		repuestos = append(repuestos, dto.OrdenRepuestoDTO{
			RepuestoID: r.RepuestoID,
			Nombre:     r.Nombre,
			Cantidad:   r.Cantidad,
		})
	}
	historial := make([]dto.HistorialDTO, 0, len(o.Historial))
	for _, h := range o.Historial {
		historial = append(historial, dto.HistorialDTO{
			Estado:     h.Estado,
			Fecha:      h.Fecha,
			Usuario:    h.Usuario,
			Comentario: h.Comentario,
		})
	}
	return &dto.OrdenResponse{
		ID:          o.ID,
		Clase:       o.Clase,
		Tipo:        o.Tipo,
		EquipoID:    o.EquipoID,
		Equipo:      o.Equipo,
		Descripcion: o.Descripcion,
		Fecha:       o.Fecha,
		Kilometraje: o.Kilometraje,
		Mecanico:    o.Mecanico,
		Estado:      o.Estado,
		Repuestos:   repuestos,
		Historial:   historial,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
