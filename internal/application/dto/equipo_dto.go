package dto

import "time"

// CreateEquipoRequest body para POST /api/equipos.
type CreateEquipoRequest struct {
	Numero      string `json:"numero"`
	Modelo      string `json:"modelo"`
	Kilometraje int    `json:"kilometraje"`
}

// UpdateEquipoRequest body para PUT /api/equipos/:id.
type UpdateEquipoRequest struct {
	Numero          string `json:"numero"`
	Modelo          string `json:"modelo"`
	Kilometraje     int    `json:"kilometraje"`
	EstadoOperativo string `json:"estado_operativo"`
	Disponibilidad  string `json:"disponibilidad"`
}

// EquipoResponse representación de un equipo de la flota.
type EquipoResponse struct {
	ID                       string     `json:"id"`
	Numero                   string     `json:"numero"`
	Modelo                   string     `json:"modelo"`
	Kilometraje              int        `json:"kilometraje"`
	EstadoOperativo          string     `json:"estado_operativo"`
	Disponibilidad           string     `json:"disponibilidad"`
	FechaUltimoMantenimiento *time.Time `json:"fecha_ultimo_mantenimiento,omitempty"`
	ProximoMantenimiento     *time.Time `json:"proximo_mantenimiento,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}
