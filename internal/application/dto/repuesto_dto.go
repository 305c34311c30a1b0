package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRepuestoRequest body para POST /api/repuestos.
type CreateRepuestoRequest struct {
	Nombre    string          `json:"nombre"`
	Stock     int             `json:"stock"`
	Minimo    int             `json:"minimo"`
	Categoria string          `json:"categoria"`
	Ubicacion string          `json:"ubicacion"`
	Proveedor string          `json:"proveedor"`
	Unidad    string          `json:"unidad"`
	Costo     decimal.Decimal `json:"costo"`
}

// UpdateRepuestoRequest body para PUT /api/repuestos/:id (solo metadatos;
// el stock se modifica vía movimientos).
type UpdateRepuestoRequest struct {
	Nombre    string `json:"nombre"`
	Minimo    int    `json:"minimo"`
	Categoria string `json:"categoria"`
	Ubicacion string `json:"ubicacion"`
	Proveedor string `json:"proveedor"`
	Unidad    string `json:"unidad"`
}

// RepuestoResponse representación de un repuesto con el stock ya normalizado.
type RepuestoResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Stock     int             `json:"stock"`
	Minimo    int             `json:"minimo"`
	StockBajo bool            `json:"stock_bajo"` // stock <= minimo
	Categoria string          `json:"categoria"`
	Ubicacion string          `json:"ubicacion"`
	Proveedor string          `json:"proveedor"`
	Unidad    string          `json:"unidad"`
	Costo     decimal.Decimal `json:"costo"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
