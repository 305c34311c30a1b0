package entity

import "time"

// Arreglada es la copia archivada e inmutable que se crea cuando un reporte
// de falla llega a estado completada. Nunca se actualiza después de creada.
type Arreglada struct {
	ID          string
	OrdenID     string // reporte de falla original
	Equipo      string
	Descripcion string
	Mecanico    string
	Repuestos   []OrdenRepuesto // snapshot de los repuestos al momento del cierre
	Fecha       time.Time
}
