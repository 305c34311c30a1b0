package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

var _ repository.OrdenRepository = (*OrdenRepo)(nil)

const ordenColumns = `id, clase, tipo, COALESCE(equipo_id::text, ''), equipo, descripcion, fecha, kilometraje, mecanico, estado, created_at, updated_at`

// OrdenRepo implementación del puerto OrdenRepository sobre PostgreSQL (usable con pool o tx).
type OrdenRepo struct {
	q Querier
}

// NewOrdenRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrdenRepository(q Querier) *OrdenRepo {
	return &OrdenRepo{q: q}
}

// Create persiste una nueva orden (sin líneas ni historial).
func (r *OrdenRepo) Create(orden *entity.Orden) error {
	query := `
		INSERT INTO ordenes (id, clase, tipo, equipo_id, equipo, descripcion, fecha, kilometraje, mecanico, estado, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		orden.ID, orden.Clase, orden.Tipo, orden.EquipoID, orden.Equipo,
		orden.Descripcion, orden.Fecha, orden.Kilometraje, orden.Mecanico, orden.Estado,
		orden.CreatedAt, orden.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert orden: %w", err)
	}
	return nil
}

// GetByID devuelve la orden con sus repuestos (en orden de consumo) y su historial.
func (r *OrdenRepo) GetByID(id string) (*entity.Orden, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes WHERE id = $1`
	var o entity.Orden
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Clase, &o.Tipo, &o.EquipoID, &o.Equipo, &o.Descripcion,
		&o.Fecha, &o.Kilometraje, &o.Mecanico, &o.Estado, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden: %w", err)
	}

	repuestos, err := r.ListRepuestos(id)
	if err != nil {
		return nil, err
	}
	o.Repuestos = repuestos

	historial, err := r.listHistorial(id)
	if err != nil {
		return nil, err
	}
	o.Historial = historial

	return &o, nil
}

// List devuelve órdenes filtradas. No carga líneas ni historial (listados).
func (r *OrdenRepo) List(filtro repository.OrdenFiltro, limit, offset int) ([]*entity.Orden, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes WHERE 1=1`
	args := []any{}
	if filtro.Clase != "" {
		args = append(args, filtro.Clase)
		query += fmt.Sprintf(" AND clase = $%d", len(args))
	}
	if filtro.Estado != "" {
		args = append(args, filtro.Estado)
		query += fmt.Sprintf(" AND estado = $%d", len(args))
	}
	if filtro.EquipoID != "" {
		args = append(args, filtro.EquipoID)
		query += fmt.Sprintf(" AND equipo_id = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY fecha DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Orden
	for rows.Next() {
		var o entity.Orden
		if err := rows.Scan(
			&o.ID, &o.Clase, &o.Tipo, &o.EquipoID, &o.Equipo, &o.Descripcion,
			&o.Fecha, &o.Kilometraje, &o.Mecanico, &o.Estado, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateEstado actualiza solo el estado de la orden.
func (r *OrdenRepo) UpdateEstado(id, estado string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE ordenes SET estado = $2, updated_at = now() WHERE id = $1`,
		id, estado,
	)
	if err != nil {
		return fmt.Errorf("update estado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListRepuestos devuelve las líneas de consumo en orden de inserción.
func (r *OrdenRepo) ListRepuestos(ordenID string) ([]entity.OrdenRepuesto, error) {
	query := `
		SELECT repuesto_id, nombre, cantidad, posicion
		FROM orden_repuestos WHERE orden_id = $1 ORDER BY posicion`
	rows, err := r.q.Query(context.Background(), query, ordenID)
	if err != nil {
		return nil, fmt.Errorf("list orden repuestos: %w", err)
	}
	defer rows.Close()
	var list []entity.OrdenRepuesto
	for rows.Next() {
		var l entity.OrdenRepuesto
		if err := rows.Scan(&l.RepuestoID, &l.Nombre, &l.Cantidad, &l.Posicion); err != nil {
			return nil, fmt.Errorf("scan orden repuesto: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// UpsertRepuesto inserta o acumula la línea de consumo (PK orden_id+repuesto_id).
func (r *OrdenRepo) UpsertRepuesto(ordenID string, linea entity.OrdenRepuesto) error {
	query := `
		INSERT INTO orden_repuestos (orden_id, repuesto_id, nombre, cantidad, posicion)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (orden_id, repuesto_id)
		DO UPDATE SET cantidad = EXCLUDED.cantidad, nombre = EXCLUDED.nombre`
	_, err := r.q.Exec(context.Background(), query,
		ordenID, linea.RepuestoID, linea.Nombre, linea.Cantidad, linea.Posicion,
	)
	if err != nil {
		return fmt.Errorf("upsert orden repuesto: %w", err)
	}
	return nil
}

// AppendHistorial agrega una entrada a la bitácora append-only.
func (r *OrdenRepo) AppendHistorial(ordenID string, entrada entity.HistorialEntrada) error {
	query := `
		INSERT INTO orden_historial (orden_id, estado, fecha, usuario, comentario)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		ordenID, entrada.Estado, entrada.Fecha, entrada.Usuario, entrada.Comentario,
	)
	if err != nil {
		return fmt.Errorf("append historial: %w", err)
	}
	return nil
}

func (r *OrdenRepo) listHistorial(ordenID string) ([]entity.HistorialEntrada, error) {
	query := `
		SELECT estado, fecha, usuario, comentario
		FROM orden_historial WHERE orden_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, ordenID)
	if err != nil {
		return nil, fmt.Errorf("list historial: %w", err)
	}
	defer rows.Close()
	var list []entity.HistorialEntrada
	for rows.Next() {
		var h entity.HistorialEntrada
		if err := rows.Scan(&h.Estado, &h.Fecha, &h.Usuario, &h.Comentario); err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

// DeleteByEquipo elimina las órdenes de un equipo; las líneas e historial
// caen por FK ON DELETE CASCADE.
func (r *OrdenRepo) DeleteByEquipo(equipoID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ordenes WHERE equipo_id = $1`, equipoID)
	if err != nil {
		return fmt.Errorf("delete ordenes por equipo: %w", err)
	}
	return nil
}
