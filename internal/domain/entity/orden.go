package entity

import "time"

// Clases de orden de trabajo.
const (
	ClaseMantenimiento = "mantenimiento" // trabajo programado por taller
	ClaseFalla         = "falla"         // reporte de avería de un conductor
)

// Tipos de mantenimiento.
const (
	TipoPreventivo = "preventivo"
	TipoCorrectivo = "correctivo"
)

// Estados de una orden de trabajo.
const (
	EstadoPendiente  = "pendiente"
	EstadoEnProceso  = "en_proceso"
	EstadoCompletada = "completada"
	EstadoCancelada  = "cancelada"
)

// Orden representa una orden de trabajo: un mantenimiento programado o un
// reporte de falla. Repuestos es el registro de consumo (no fuente de verdad
// del stock); Historial es una bitácora append-only de cambios de estado.
type Orden struct {
	ID          string
	Clase       string // mantenimiento, falla
	Tipo        string // preventivo, correctivo
	EquipoID    string // opcional
	Equipo      string // etiqueta denormalizada para listados
	Descripcion string
	Fecha       time.Time
	Kilometraje int
	Mecanico    string
	Estado      string
	Repuestos   []OrdenRepuesto
	Historial   []HistorialEntrada
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrdenRepuesto es una línea de consumo dentro de una orden.
// El orden de inserción (Posicion) es el orden de consumo.
type OrdenRepuesto struct {
	RepuestoID string
	Nombre     string
	Cantidad   int // siempre >= 1
	Posicion   int
}

// HistorialEntrada es un registro de auditoría de cambio de estado.
// Las entradas nunca se modifican ni se eliminan.
type HistorialEntrada struct {
	Estado     string
	Fecha      time.Time
	Usuario    string
	Comentario string
}
