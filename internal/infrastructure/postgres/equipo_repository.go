package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

var _ repository.EquipoRepository = (*EquipoRepo)(nil)

const equipoColumns = `id, numero, modelo, kilometraje, estado_operativo, disponibilidad, fecha_ultimo_mantenimiento, proximo_mantenimiento, created_at, updated_at`

// EquipoRepo implementación del puerto EquipoRepository sobre PostgreSQL (usable con pool o tx).
type EquipoRepo struct {
	q Querier
}

// NewEquipoRepository construye el adaptador de equipos. Pasar pool o tx (Querier).
func NewEquipoRepository(q Querier) *EquipoRepo {
	return &EquipoRepo{q: q}
}

// Create persiste un nuevo equipo.
func (r *EquipoRepo) Create(equipo *entity.Equipo) error {
	query := `
		INSERT INTO equipos (` + equipoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		equipo.ID, equipo.Numero, equipo.Modelo, equipo.Kilometraje,
		equipo.EstadoOperativo, equipo.Disponibilidad,
		equipo.FechaUltimoMantenimiento, equipo.ProximoMantenimiento,
		equipo.CreatedAt, equipo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert equipo: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *EquipoRepo) GetByID(id string) (*entity.Equipo, error) {
	query := `SELECT ` + equipoColumns + ` FROM equipos WHERE id = $1`
	var e entity.Equipo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Numero, &e.Modelo, &e.Kilometraje,
		&e.EstadoOperativo, &e.Disponibilidad,
		&e.FechaUltimoMantenimiento, &e.ProximoMantenimiento,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipo: %w", err)
	}
	return &e, nil
}

// Update actualiza un equipo existente.
func (r *EquipoRepo) Update(equipo *entity.Equipo) error {
	query := `
		UPDATE equipos SET numero = $2, modelo = $3, kilometraje = $4,
			estado_operativo = $5, disponibilidad = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		equipo.ID, equipo.Numero, equipo.Modelo, equipo.Kilometraje,
		equipo.EstadoOperativo, equipo.Disponibilidad, equipo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update equipo: %w", err)
	}
	return nil
}

// ActualizarTrasMantenimiento aplica la cascada de cierre de una orden en una sola escritura.
func (r *EquipoRepo) ActualizarTrasMantenimiento(id string, kilometraje int, ultimo, proximo time.Time, estadoOperativo string) error {
	query := `
		UPDATE equipos SET kilometraje = $2, fecha_ultimo_mantenimiento = $3,
			proximo_mantenimiento = $4, estado_operativo = $5, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, kilometraje, ultimo, proximo, estadoOperativo)
	if err != nil {
		return fmt.Errorf("actualizar equipo tras mantenimiento: %w", err)
	}
	return nil
}

// List lista equipos con paginación.
func (r *EquipoRepo) List(limit, offset int) ([]*entity.Equipo, error) {
	query := `SELECT ` + equipoColumns + ` FROM equipos ORDER BY numero LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list equipos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipo
	for rows.Next() {
		var e entity.Equipo
		if err := rows.Scan(
			&e.ID, &e.Numero, &e.Modelo, &e.Kilometraje,
			&e.EstadoOperativo, &e.Disponibilidad,
			&e.FechaUltimoMantenimiento, &e.ProximoMantenimiento,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan equipo: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un equipo por ID.
func (r *EquipoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM equipos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete equipo: %w", err)
	}
	return nil
}
