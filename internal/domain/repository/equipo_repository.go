package repository

import (
	"time"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// EquipoRepository define el puerto de persistencia para Equipo.
type EquipoRepository interface {
	Create(equipo *entity.Equipo) error
	GetByID(id string) (*entity.Equipo, error)
	Update(equipo *entity.Equipo) error
	// ActualizarTrasMantenimiento aplica la cascada de cierre de una orden:
	// kilometraje, fecha de último mantenimiento, próximo mantenimiento y
	// estado operativo, en una sola escritura.
	ActualizarTrasMantenimiento(id string, kilometraje int, ultimo, proximo time.Time, estadoOperativo string) error
	List(limit, offset int) ([]*entity.Equipo, error)
	Delete(id string) error
}
