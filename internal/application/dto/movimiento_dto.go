package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarMovimientoRequest body para POST /api/repuestos/:id/movimientos.
type RegistrarMovimientoRequest struct {
	Tipo          string           `json:"tipo"` // entrada, ajuste
	Cantidad      int              `json:"cantidad"`
	CostoUnitario *decimal.Decimal `json:"costo_unitario,omitempty"`
}

// MovimientoResponse entrada de la bitácora de stock.
type MovimientoResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	RepuestoID    string          `json:"repuesto_id"`
	OrdenID       string          `json:"orden_id,omitempty"`
	Tipo          string          `json:"tipo"`
	Cantidad      int             `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	Fecha         time.Time       `json:"fecha"`
	Usuario       string          `json:"usuario"`
}
