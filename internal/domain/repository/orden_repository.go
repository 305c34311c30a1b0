package repository

import "github.com/jhoicas/Flota-api/internal/domain/entity"

// OrdenFiltro criterios opcionales para listar órdenes (vacío = sin filtro).
type OrdenFiltro struct {
	Clase    string
	Estado   string
	EquipoID string
}

// OrdenRepository define el puerto de persistencia para órdenes de trabajo,
// sus líneas de consumo y su historial append-only.
type OrdenRepository interface {
	Create(orden *entity.Orden) error
	// GetByID devuelve la orden con repuestos (en orden de consumo) e historial.
	GetByID(id string) (*entity.Orden, error)
	List(filtro OrdenFiltro, limit, offset int) ([]*entity.Orden, error)
	UpdateEstado(id, estado string) error
	ListRepuestos(ordenID string) ([]entity.OrdenRepuesto, error)
	// UpsertRepuesto inserta la línea en la siguiente posición o actualiza la
	// cantidad si el repuesto ya figura en la orden.
	UpsertRepuesto(ordenID string, linea entity.OrdenRepuesto) error
	// AppendHistorial agrega una entrada a la bitácora; nunca modifica entradas previas.
	AppendHistorial(ordenID string, entrada entity.HistorialEntrada) error
	// DeleteByEquipo elimina las órdenes de un equipo (cascada de borrado de equipo).
	DeleteByEquipo(equipoID string) error
}
