package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// RepuestoRepository define el puerto de persistencia para Repuesto (DIP).
type RepuestoRepository interface {
	Create(repuesto *entity.Repuesto) error
	GetByID(id string) (*entity.Repuesto, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Usar solo dentro de una transacción.
	GetForUpdate(id string) (*entity.Repuesto, error)
	// SetStock escribe el nuevo stock en ambas columnas (stock y cantidad)
	// con idéntico valor, para mantener consistentes a los lectores legados.
	SetStock(id string, stock int) error
	UpdateCosto(id string, costo decimal.Decimal) error
	// Update modifica solo metadatos; el stock se maneja vía movimientos.
	Update(repuesto *entity.Repuesto) error
	List(limit, offset int) ([]*entity.Repuesto, error)
	Delete(id string) error
}
