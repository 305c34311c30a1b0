package entity

import "time"

// Estados operativos de un equipo.
const (
	EquipoOperativo       = "operativo"
	EquipoEnMantenimiento = "en_mantenimiento"
	EquipoFueraDeServicio = "fuera_de_servicio"
)

// Disponibilidad de un equipo.
const (
	DisponibilidadDisponible   = "disponible"
	DisponibilidadParcial      = "parcial"
	DisponibilidadNoDisponible = "no_disponible"
)

// Equipo representa una unidad de la flota.
type Equipo struct {
	ID                       string
	Numero                   string
	Modelo                   string
	Kilometraje              int
	EstadoOperativo          string // operativo, en_mantenimiento, fuera_de_servicio
	Disponibilidad           string // disponible, parcial, no_disponible
	FechaUltimoMantenimiento *time.Time
	ProximoMantenimiento     *time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time
}
