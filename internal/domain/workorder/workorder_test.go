package workorder_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/workorder"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestPuedeTransicionar_Tabla(t *testing.T) {
	casos := []struct {
		nombre   string
		clase    string
		desde    string
		hacia    string
		esperado bool
	}{
		{"pendiente a en_proceso", entity.ClaseMantenimiento, entity.EstadoPendiente, entity.EstadoEnProceso, true},
		{"pendiente directo a completada", entity.ClaseMantenimiento, entity.EstadoPendiente, entity.EstadoCompletada, true},
		{"en_proceso a completada", entity.ClaseMantenimiento, entity.EstadoEnProceso, entity.EstadoCompletada, true},
		{"en_proceso no retrocede", entity.ClaseMantenimiento, entity.EstadoEnProceso, entity.EstadoPendiente, false},
		{"mantenimiento no se cancela", entity.ClaseMantenimiento, entity.EstadoPendiente, entity.EstadoCancelada, false},
		{"mantenimiento completada es terminal", entity.ClaseMantenimiento, entity.EstadoCompletada, entity.EstadoPendiente, false},
		{"falla pendiente se cancela", entity.ClaseFalla, entity.EstadoPendiente, entity.EstadoCancelada, true},
		{"falla en_proceso se cancela", entity.ClaseFalla, entity.EstadoEnProceso, entity.EstadoCancelada, true},
		{"falla completada se reabre", entity.ClaseFalla, entity.EstadoCompletada, entity.EstadoPendiente, true},
		{"falla cancelada es terminal", entity.ClaseFalla, entity.EstadoCancelada, entity.EstadoPendiente, false},
		{"falla completada no pasa a en_proceso", entity.ClaseFalla, entity.EstadoCompletada, entity.EstadoEnProceso, false},
		{"mismo estado no es transición", entity.ClaseFalla, entity.EstadoPendiente, entity.EstadoPendiente, false},
		{"estado desconocido rechaza", entity.ClaseFalla, "inventado", entity.EstadoPendiente, false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, workorder.PuedeTransicionar(c.clase, c.desde, c.hacia))
		})
	}
}

func TestEsTerminal(t *testing.T) {
	assert.True(t, workorder.EsTerminal(entity.EstadoCompletada))
	assert.True(t, workorder.EsTerminal(entity.EstadoCancelada))
	assert.False(t, workorder.EsTerminal(entity.EstadoPendiente))
	assert.False(t, workorder.EsTerminal(entity.EstadoEnProceso))
}

func TestProximoMantenimiento(t *testing.T) {
	desde := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC),
		workorder.ProximoMantenimiento(entity.TipoPreventivo, desde),
		"preventivo agenda a 3 meses")
	assert.Equal(t, time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC),
		workorder.ProximoMantenimiento(entity.TipoCorrectivo, desde),
		"correctivo agenda a 1 mes")
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de stock aliasado
// ──────────────────────────────────────────────────────────────────────────────

func TestStockDisponible_Fallback(t *testing.T) {
	cinco, tres := 5, 3

	assert.Equal(t, 5, workorder.StockDisponible(&cinco, &tres),
		"con ambos campos poblados gana stock")
	assert.Equal(t, 3, workorder.StockDisponible(nil, &tres),
		"sin stock se cae al alias cantidad")
	assert.Equal(t, 5, workorder.StockDisponible(&cinco, nil))
	assert.Equal(t, 0, workorder.StockDisponible(nil, nil),
		"sin ninguno de los dos el disponible es cero")
}

func TestNuevoStock_SaturaEnCero(t *testing.T) {
	assert.Equal(t, 2, workorder.NuevoStock(5, 3))
	assert.Equal(t, 0, workorder.NuevoStock(5, 5))
	assert.Equal(t, 0, workorder.NuevoStock(2, 5), "nunca queda stock negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Costo promedio ponderado
// ──────────────────────────────────────────────────────────────────────────────

func TestCostoPromedio(t *testing.T) {
	// (10*10 + 10*20) / 20 = 15
	got := workorder.CostoPromedio(10, decimal.NewFromInt(10), 10, decimal.NewFromInt(20))
	assert.True(t, got.Equal(decimal.NewFromInt(15)), "quedó %s", got)

	// Stock cero: el costo de la entrada manda
	got = workorder.CostoPromedio(0, decimal.NewFromInt(10), 5, decimal.NewFromInt(20))
	assert.True(t, got.Equal(decimal.NewFromInt(20)), "quedó %s", got)

	// Suma no positiva no divide
	got = workorder.CostoPromedio(0, decimal.Zero, 0, decimal.NewFromInt(20))
	assert.True(t, got.Equal(decimal.Zero))
}
