package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"salabelleza/internal/db"
)

// ErrServiciosFaltantes indica que algún ID de servicio pedido no existe.
var ErrServiciosFaltantes = errors.New("algunos servicios no existen")

type ServicioRepository struct {
	DB *sql.DB
}

func NewServicioRepository(database *sql.DB) *ServicioRepository {
	return &ServicioRepository{DB: database}
}

func (r *ServicioRepository) ListServicios() ([]db.Servicio, error) {
	rows, err := r.DB.Query(`SELECT id, nombre, duracion_minutos, precio, sector_id
	                         FROM servicios ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var servicios []db.Servicio
	for rows.Next() {
		var s db.Servicio
		if err := rows.Scan(&s.ID, &s.Nombre, &s.DuracionMinutos, &s.Precio, &s.SectorID); err != nil {
			return nil, err
		}
		servicios = append(servicios, s)
	}
	return servicios, rows.Err()
}

func (r *ServicioRepository) GetServiciosPorIDs(ids []int) ([]db.Servicio, error) {
	rows, err := r.DB.Query(`SELECT id, nombre, duracion_minutos, precio, sector_id
	                         FROM servicios WHERE id = ANY($1) ORDER BY nombre`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var servicios []db.Servicio
	for rows.Next() {
		var s db.Servicio
		if err := rows.Scan(&s.ID, &s.Nombre, &s.DuracionMinutos, &s.Precio, &s.SectorID); err != nil {
			return nil, err
		}
		servicios = append(servicios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(servicios) != len(ids) {
		return nil, fmt.Errorf("%w: pedidos %d, encontrados %d", ErrServiciosFaltantes, len(ids), len(servicios))
	}
	return servicios, nil
}

func (r *ServicioRepository) CreateServicio(s *db.Servicio) error {
	query := `INSERT INTO servicios (nombre, duracion_minutos, precio, sector_id)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.DB.QueryRow(query, s.Nombre, s.DuracionMinutos, s.Precio, s.SectorID).Scan(&s.ID)
}

func (r *ServicioRepository) UpdateServicio(s *db.Servicio) error {
	_, err := r.DB.Exec(`UPDATE servicios SET nombre = $1, duracion_minutos = $2, precio = $3, sector_id = $4
	                     WHERE id = $5`, s.Nombre, s.DuracionMinutos, s.Precio, s.SectorID, s.ID)
	return err
}

func (r *ServicioRepository) DeleteServicio(id int) error {
	_, err := r.DB.Exec(`DELETE FROM servicios WHERE id = $1`, id)
	return err
}

func (r *ServicioRepository) ListExtras(servicioID int) ([]db.Extra, error) {
	rows, err := r.DB.Query(`SELECT id, servicio_id, nombre, duracion_minutos, precio
	                         FROM extras WHERE servicio_id = $1 ORDER BY nombre`, servicioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extras []db.Extra
	for rows.Next() {
		var e db.Extra
		if err := rows.Scan(&e.ID, &e.ServicioID, &e.Nombre, &e.DuracionMinutos, &e.Precio); err != nil {
			return nil, err
		}
		extras = append(extras, e)
	}
	return extras, rows.Err()
}

func (r *ServicioRepository) CreateExtra(e *db.Extra) error {
	query := `INSERT INTO extras (servicio_id, nombre, duracion_minutos, precio)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.DB.QueryRow(query, e.ServicioID, e.Nombre, e.DuracionMinutos, e.Precio).Scan(&e.ID)
}

func (r *ServicioRepository) DeleteExtra(id int) error {
	_, err := r.DB.Exec(`DELETE FROM extras WHERE id = $1`, id)
	return err
}

// Asignación servicio ↔ habilidad requerida.
func (r *ServicioRepository) AsignarHabilidad(servicioID, habilidadID int) error {
	_, err := r.DB.Exec(`INSERT INTO servicio_habilidades (servicio_id, habilidad_id)
	                     VALUES ($1, $2) ON CONFLICT DO NOTHING`, servicioID, habilidadID)
	return err
}

func (r *ServicioRepository) DesasignarHabilidad(servicioID, habilidadID int) error {
	_, err := r.DB.Exec(`DELETE FROM servicio_habilidades WHERE servicio_id = $1 AND habilidad_id = $2`,
		servicioID, habilidadID)
	return err
}
