package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovimientoEntrada = "entrada" // reposición de stock
	MovimientoSalida  = "salida"  // consumo desde una orden
	MovimientoAjuste  = "ajuste"  // corrección manual
)

// Movimiento registra cada mutación de stock de un repuesto (bitácora de auditoría).
type Movimiento struct {
	ID            string
	TransactionID string
	RepuestoID    string
	OrdenID       string // vacío para entradas y ajustes manuales
	Tipo          string
	Cantidad      int // negativo para salidas
	CostoUnitario decimal.Decimal
	Fecha         time.Time
	Usuario       string
}
