package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

var _ repository.RepuestoRepository = (*RepuestoRepo)(nil)

const repuestoColumns = `id, nombre, stock, cantidad, minimo, categoria, ubicacion, proveedor, unidad, costo, created_at, updated_at`

// RepuestoRepo implementación del puerto RepuestoRepository sobre PostgreSQL (usable con pool o tx).
type RepuestoRepo struct {
	q Querier
}

// NewRepuestoRepository construye el adaptador de repuestos. Pasar pool o tx (Querier).
func NewRepuestoRepository(q Querier) *RepuestoRepo {
	return &RepuestoRepo{q: q}
}

// Create persiste un nuevo repuesto.
func (r *RepuestoRepo) Create(repuesto *entity.Repuesto) error {
	query := `
		INSERT INTO repuestos (` + repuestoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		repuesto.ID, repuesto.Nombre, repuesto.Stock, repuesto.Cantidad, repuesto.Minimo,
		repuesto.Categoria, repuesto.Ubicacion, repuesto.Proveedor, repuesto.Unidad,
		repuesto.Costo, repuesto.CreatedAt, repuesto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert repuesto: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *RepuestoRepo) GetByID(id string) (*entity.Repuesto, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el repuesto y bloquea la fila para update (SELECT FOR UPDATE).
func (r *RepuestoRepo) GetForUpdate(id string) (*entity.Repuesto, error) {
	return r.get(id, true)
}

func (r *RepuestoRepo) get(id string, forUpdate bool) (*entity.Repuesto, error) {
	query := `SELECT ` + repuestoColumns + ` FROM repuestos WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var rep entity.Repuesto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rep.ID, &rep.Nombre, &rep.Stock, &rep.Cantidad, &rep.Minimo,
		&rep.Categoria, &rep.Ubicacion, &rep.Proveedor, &rep.Unidad,
		&rep.Costo, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repuesto: %w", err)
	}
	return &rep, nil
}

// SetStock escribe el nuevo stock en ambas columnas aliasadas con idéntico valor.
func (r *RepuestoRepo) SetStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE repuestos SET stock = $2, cantidad = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}

// UpdateCosto actualiza solo el costo promedio del repuesto.
func (r *RepuestoRepo) UpdateCosto(id string, costo decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE repuestos SET costo = $2, updated_at = now() WHERE id = $1`,
		id, costo,
	)
	if err != nil {
		return fmt.Errorf("update costo: %w", err)
	}
	return nil
}

// Update actualiza los metadatos de un repuesto. No toca stock, cantidad ni costo.
func (r *RepuestoRepo) Update(repuesto *entity.Repuesto) error {
	query := `
		UPDATE repuestos SET nombre = $2, minimo = $3, categoria = $4, ubicacion = $5,
			proveedor = $6, unidad = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		repuesto.ID, repuesto.Nombre, repuesto.Minimo, repuesto.Categoria,
		repuesto.Ubicacion, repuesto.Proveedor, repuesto.Unidad, repuesto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update repuesto: %w", err)
	}
	return nil
}

// List lista repuestos con paginación.
func (r *RepuestoRepo) List(limit, offset int) ([]*entity.Repuesto, error) {
	query := `SELECT ` + repuestoColumns + ` FROM repuestos ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list repuestos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Repuesto
	for rows.Next() {
		var rep entity.Repuesto
		if err := rows.Scan(
			&rep.ID, &rep.Nombre, &rep.Stock, &rep.Cantidad, &rep.Minimo,
			&rep.Categoria, &rep.Ubicacion, &rep.Proveedor, &rep.Unidad,
			&rep.Costo, &rep.CreatedAt, &rep.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan repuesto: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}

// Delete elimina un repuesto por ID.
func (r *RepuestoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM repuestos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete repuesto: %w", err)
	}
	return nil
}
