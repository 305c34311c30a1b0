package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

var _ repository.ArregladaRepository = (*ArregladaRepo)(nil)

// ArregladaRepo implementación del puerto ArregladaRepository sobre PostgreSQL (usable con pool o tx).
// El snapshot de repuestos se guarda como JSONB: la arreglada es inmutable y
// no necesita joins.
type ArregladaRepo struct {
	q Querier
}

// NewArregladaRepository construye el adaptador de arregladas. Pasar pool o tx (Querier).
func NewArregladaRepository(q Querier) *ArregladaRepo {
	return &ArregladaRepo{q: q}
}

type arregladaLinea struct {
	RepuestoID string `json:"repuesto_id"`
	Nombre     string `json:"nombre"`
	Cantidad   int    `json:"cantidad"`
	Posicion   int    `json:"posicion"`
}

// Create persiste el registro archivado de una falla reparada.
func (r *ArregladaRepo) Create(arreglada *entity.Arreglada) error {
	lineas := make([]arregladaLinea, 0, len(arreglada.Repuestos))
	for _, l := range arreglada.Repuestos {
		lineas = append(lineas, arregladaLinea{
			RepuestoID: l.RepuestoID, Nombre: l.Nombre, Cantidad: l.Cantidad, Posicion: l.Posicion,
		})
	}
	snapshot, err := json.Marshal(lineas)
	if err != nil {
		return fmt.Errorf("marshal snapshot repuestos: %w", err)
	}
	query := `
		INSERT INTO arregladas (id, orden_id, equipo, descripcion, mecanico, repuestos, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		arreglada.ID, arreglada.OrdenID, arreglada.Equipo, arreglada.Descripcion,
		arreglada.Mecanico, snapshot, arreglada.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert arreglada: %w", err)
	}
	return nil
}

// GetByID obtiene una arreglada por ID.
func (r *ArregladaRepo) GetByID(id string) (*entity.Arreglada, error) {
	query := `
		SELECT id, orden_id, equipo, descripcion, mecanico, repuestos, fecha
		FROM arregladas WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	a, err := scanArreglada(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get arreglada: %w", err)
	}
	return a, nil
}

// List lista arregladas, las más recientes primero.
func (r *ArregladaRepo) List(limit, offset int) ([]*entity.Arreglada, error) {
	query := `
		SELECT id, orden_id, equipo, descripcion, mecanico, repuestos, fecha
		FROM arregladas ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list arregladas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Arreglada
	for rows.Next() {
		a, err := scanArreglada(rows)
		if err != nil {
			return nil, fmt.Errorf("scan arreglada: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func scanArreglada(row pgx.Row) (*entity.Arreglada, error) {
	var a entity.Arreglada
	var snapshot []byte
	if err := row.Scan(&a.ID, &a.OrdenID, &a.Equipo, &a.Descripcion, &a.Mecanico, &snapshot, &a.Fecha); err != nil {
		return nil, err
	}
	var lineas []arregladaLinea
	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &lineas); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot repuestos: %w", err)
		}
	}
	a.Repuestos = make([]entity.OrdenRepuesto, 0, len(lineas))
	for _, l := range lineas {
		a.Repuestos = append(a.Repuestos, entity.OrdenRepuesto{
			RepuestoID: l.RepuestoID, Nombre: l.Nombre, Cantidad: l.Cantidad, Posicion: l.Posicion,
		})
	}
	return &a, nil
}
