package usecase

import (
	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// ConsultaUseCase lecturas del archivo de arregladas y de la bitácora de
// movimientos de stock. Solo lectura.
type ConsultaUseCase struct {
	arregladaRepo  repository.ArregladaRepository
	movimientoRepo repository.MovimientoRepository
}

// NewConsultaUseCase construye el caso de uso.
func NewConsultaUseCase(arregladaRepo repository.ArregladaRepository, movimientoRepo repository.MovimientoRepository) *ConsultaUseCase {
	return &ConsultaUseCase{arregladaRepo: arregladaRepo, movimientoRepo: movimientoRepo}
}

// ListArregladas devuelve las fallas reparadas archivadas.
func (uc *ConsultaUseCase) ListArregladas(page dto.PageRequest) ([]*dto.ArregladaResponse, error) {
	page.DefaultPage()
	arregladas, err := uc.arregladaRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ArregladaResponse, 0, len(arregladas))
	for _, a := range arregladas {
		out = append(out, toArregladaResponse(a))
	}
	return out, nil
}

// GetArreglada devuelve una arreglada por ID o ErrNotFound.
func (uc *ConsultaUseCase) GetArreglada(id string) (*dto.ArregladaResponse, error) {
	arreglada, err := uc.arregladaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if arreglada == nil {
		return nil, domain.ErrNotFound
	}
	return toArregladaResponse(arreglada), nil
}

// ListMovimientos devuelve la bitácora de stock de un repuesto.
func (uc *ConsultaUseCase) ListMovimientos(repuestoID string, page dto.PageRequest) ([]*dto.MovimientoResponse, error) {
	page.DefaultPage()
	movimientos, err := uc.movimientoRepo.ListByRepuesto(repuestoID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimientoResponse, 0, len(movimientos))
	for _, m := range movimientos {
		out = append(out, &dto.MovimientoResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			RepuestoID:    m.RepuestoID,
			OrdenID:       m.OrdenID,
			Tipo:          m.Tipo,
			Cantidad:      m.Cantidad,
			CostoUnitario: m.CostoUnitario,
			Fecha:         m.Fecha,
			Usuario:       m.Usuario,
		})
	}
	return out, nil
}

func toArregladaResponse(a *entity.Arreglada) *dto.ArregladaResponse {
	repuestos := make([]dto.OrdenRepuestoDTO, 0, len(a.Repuestos))
	for _, r := range a.Repuestos {
		repuestos = append(repuestos, dto.OrdenRepuestoDTO{
			RepuestoID: r.RepuestoID,
			Nombre:     r.Nombre,
			Cantidad:   r.Cantidad,
		})
	}
	return &dto.ArregladaResponse{
		ID:          a.ID,
		OrdenID:     a.OrdenID,
		Equipo:      a.Equipo,
		Descripcion: a.Descripcion,
		Mecanico:    a.Mecanico,
		Repuestos:   repuestos,
		Fecha:       a.Fecha,
	}
}
