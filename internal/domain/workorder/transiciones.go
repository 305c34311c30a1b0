package workorder

import (
	"time"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// Tabla estática de transiciones de estado (servicio de dominio).
// Toda mutación de estado pasa por aquí; cualquier par fuera de la tabla
// se rechaza con ErrInvalidTransition en el caso de uso.
//
// La cancelación y la reapertura solo existen para reportes de falla.
var transicionesComunes = map[string][]string{
	entity.EstadoPendiente:  {entity.EstadoEnProceso, entity.EstadoCompletada},
	entity.EstadoEnProceso:  {entity.EstadoCompletada},
	entity.EstadoCompletada: {},
	entity.EstadoCancelada:  {},
}

var transicionesFalla = map[string][]string{
	entity.EstadoPendiente:  {entity.EstadoEnProceso, entity.EstadoCompletada, entity.EstadoCancelada},
	entity.EstadoEnProceso:  {entity.EstadoCompletada, entity.EstadoCancelada},
	entity.EstadoCompletada: {entity.EstadoPendiente}, // reapertura
	entity.EstadoCancelada:  {},
}

// PuedeTransicionar indica si una orden de la clase dada puede pasar de un
// estado a otro.
func PuedeTransicionar(clase, desde, hacia string) bool {
	tabla := transicionesComunes
	if clase == entity.ClaseFalla {
		tabla = transicionesFalla
	}
	for _, permitido := range tabla[desde] {
		if permitido == hacia {
			return true
		}
	}
	return false
}

// EsTerminal indica si el estado cierra la orden: una orden terminal no
// acepta nuevos consumos de repuestos.
func EsTerminal(estado string) bool {
	return estado == entity.EstadoCompletada || estado == entity.EstadoCancelada
}

// ProximoMantenimiento calcula la fecha del siguiente mantenimiento programado
// tras completar una orden: +3 meses para preventivo, +1 mes (cadencia de
// revisión) para correctivo.
func ProximoMantenimiento(tipo string, desde time.Time) time.Time {
	if tipo == entity.TipoPreventivo {
		return desde.AddDate(0, 3, 0)
	}
	return desde.AddDate(0, 1, 0)
}
