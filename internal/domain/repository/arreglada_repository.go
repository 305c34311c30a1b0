package repository

import "github.com/jhoicas/Flota-api/internal/domain/entity"

// ArregladaRepository define el puerto de persistencia para los registros
// archivados de fallas reparadas. Solo inserción y lectura: las arregladas
// son inmutables.
type ArregladaRepository interface {
	Create(arreglada *entity.Arreglada) error
	GetByID(id string) (*entity.Arreglada, error)
	List(limit, offset int) ([]*entity.Arreglada, error)
}
