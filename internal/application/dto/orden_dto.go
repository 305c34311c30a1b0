package dto

import "time"

// CreateOrdenRequest body para POST /api/ordenes.
type CreateOrdenRequest struct {
	Clase       string `json:"clase"` // mantenimiento, falla
	Tipo        string `json:"tipo"`  // preventivo, correctivo
	EquipoID    string `json:"equipo_id,omitempty"`
	Descripcion string `json:"descripcion"`
	Kilometraje int    `json:"kilometraje"`
	Mecanico    string `json:"mecanico"`
}

// ConsumoRequest body para POST /api/ordenes/:id/repuestos.
type ConsumoRequest struct {
	RepuestoID string `json:"repuesto_id"`
	Nombre     string `json:"nombre,omitempty"`
	Cantidad   int    `json:"cantidad"`
}

// CambioEstadoRequest body para POST /api/ordenes/:id/estado.
type CambioEstadoRequest struct {
	Estado     string `json:"estado"`
	Comentario string `json:"comentario,omitempty"`
}

// OrdenRepuestoDTO línea de consumo dentro de una orden.
type OrdenRepuestoDTO struct {
	RepuestoID string `json:"repuesto_id"`
	Nombre     string `json:"nombre"`
	Cantidad   int    `json:"cantidad"`
}

// HistorialDTO entrada de la bitácora de estados.
type HistorialDTO struct {
	Estado     string    `json:"estado"`
	Fecha      time.Time `json:"fecha"`
	Usuario    string    `json:"usuario"`
	Comentario string    `json:"comentario,omitempty"`
}

// OrdenResponse representación completa de una orden de trabajo.
type OrdenResponse struct {
	ID          string             `json:"id"`
	Clase       string             `json:"clase"`
	Tipo        string             `json:"tipo"`
	EquipoID    string             `json:"equipo_id,omitempty"`
	Equipo      string             `json:"equipo,omitempty"`
	Descripcion string             `json:"descripcion"`
	Fecha       time.Time          `json:"fecha"`
	Kilometraje int                `json:"kilometraje"`
	Mecanico    string             `json:"mecanico"`
	Estado      string             `json:"estado"`
	Repuestos   []OrdenRepuestoDTO `json:"repuestos"`
	Historial   []HistorialDTO     `json:"historial"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ArregladaResponse copia archivada de una falla reparada.
type ArregladaResponse struct {
	ID          string             `json:"id"`
	OrdenID     string             `json:"orden_id"`
	Equipo      string             `json:"equipo,omitempty"`
	Descripcion string             `json:"descripcion"`
	Mecanico    string             `json:"mecanico"`
	Repuestos   []OrdenRepuestoDTO `json:"repuestos"`
	Fecha       time.Time          `json:"fecha"`
}
