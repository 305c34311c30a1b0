package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Repuesto representa una pieza del inventario del taller.
//
// Stock y Cantidad guardan el mismo valor: Cantidad es la columna legada que
// lectores antiguos siguen consultando. Toda escritura fija ambos campos con
// idéntico valor; toda lectura normaliza vía workorder.StockDisponible.
type Repuesto struct {
	ID        string
	Nombre    string
	Stock     *int // nil en filas legadas que solo tienen Cantidad
	Cantidad  *int // alias legado de Stock
	Minimo    int  // umbral de stock bajo
	Categoria string
	Ubicacion string
	Proveedor string
	Unidad    string
	Costo     decimal.Decimal // costo promedio ponderado (se recalcula en entradas)
	CreatedAt time.Time
	UpdatedAt time.Time
}
