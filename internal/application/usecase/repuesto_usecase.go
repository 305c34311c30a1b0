package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
	"github.com/jhoicas/Flota-api/internal/domain/workorder"
)

// RepuestoUseCase operaciones CRUD sobre el inventario de repuestos.
// El stock solo se crea aquí; después se modifica vía movimientos.
type RepuestoUseCase struct {
	repuestoRepo repository.RepuestoRepository
}

// NewRepuestoUseCase construye el caso de uso.
func NewRepuestoUseCase(repuestoRepo repository.RepuestoRepository) *RepuestoUseCase {
	return &RepuestoUseCase{repuestoRepo: repuestoRepo}
}

// Create da de alta un repuesto con su stock inicial en ambos campos aliasados.
func (uc *RepuestoUseCase) Create(in dto.CreateRepuestoRequest) (*dto.RepuestoResponse, error) {
	if in.Nombre == "" || in.Stock < 0 || in.Minimo < 0 || in.Costo.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	stock := in.Stock
	repuesto := &entity.Repuesto{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Stock:     &stock,
		Cantidad:  &stock,
		Minimo:    in.Minimo,
		Categoria: in.Categoria,
		Ubicacion: in.Ubicacion,
		Proveedor: in.Proveedor,
		Unidad:    in.Unidad,
		Costo:     in.Costo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repuestoRepo.Create(repuesto); err != nil {
		return nil, err
	}
	return toRepuestoResponse(repuesto), nil
}

// GetByID devuelve un repuesto o ErrNotFound.
func (uc *RepuestoUseCase) GetByID(id string) (*dto.RepuestoResponse, error) {
	repuesto, err := uc.repuestoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if repuesto == nil {
		return nil, domain.ErrNotFound
	}
	return toRepuestoResponse(repuesto), nil
}

// List devuelve los repuestos paginados con la marca de stock bajo.
func (uc *RepuestoUseCase) List(page dto.PageRequest) ([]*dto.RepuestoResponse, error) {
	page.DefaultPage()
	repuestos, err := uc.repuestoRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RepuestoResponse, 0, len(repuestos))
	for _, r := range repuestos {
		out = append(out, toRepuestoResponse(r))
	}
	return out, nil
}

// Update modifica los metadatos de un repuesto (no el stock ni el costo).
func (uc *RepuestoUseCase) Update(id string, in dto.UpdateRepuestoRequest) (*dto.RepuestoResponse, error) {
	if in.Nombre == "" || in.Minimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	repuesto, err := uc.repuestoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if repuesto == nil {
		return nil, domain.ErrNotFound
	}
	repuesto.Nombre = in.Nombre
	repuesto.Minimo = in.Minimo
	repuesto.Categoria = in.Categoria
	repuesto.Ubicacion = in.Ubicacion
	repuesto.Proveedor = in.Proveedor
	repuesto.Unidad = in.Unidad
	repuesto.UpdatedAt = time.Now()
	if err := uc.repuestoRepo.Update(repuesto); err != nil {
		return nil, err
	}
	return toRepuestoResponse(repuesto), nil
}

// Delete elimina un repuesto del inventario.
func (uc *RepuestoUseCase) Delete(id string) error {
	repuesto, err := uc.repuestoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if repuesto == nil {
		return domain.ErrNotFound
	}
	return uc.repuestoRepo.Delete(id)
}

func toRepuestoResponse(r *entity.Repuesto) *dto.RepuestoResponse {
	stock := workorder.StockDisponible(r.Stock, r.Cantidad)
	return &dto.RepuestoResponse{
		ID:        r.ID,
		Nombre:    r.Nombre,
		Stock:     stock,
		Minimo:    r.Minimo,
		StockBajo: stock <= r.Minimo,
		Categoria: r.Categoria,
		Ubicacion: r.Ubicacion,
		Proveedor: r.Proveedor,
		Unidad:    r.Unidad,
		Costo:     r.Costo,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
