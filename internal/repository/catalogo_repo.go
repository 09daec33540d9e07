package repository

import (
	"database/sql"
	"errors"

	"salabelleza/internal/db"
)

// CatalogoRepository maneja sucursales, sectores y habilidades: las tablas
// de referencia que el flujo de reserva solo lee y el back office edita.
type CatalogoRepository struct {
	DB *sql.DB
}

func NewCatalogoRepository(database *sql.DB) *CatalogoRepository {
	return &CatalogoRepository{DB: database}
}

func (r *CatalogoRepository) ListSucursales() ([]db.Sucursal, error) {
	rows, err := r.DB.Query(`SELECT id, nombre, direccion FROM sucursales ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sucursales []db.Sucursal
	for rows.Next() {
		var s db.Sucursal
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Direccion); err != nil {
			return nil, err
		}
		sucursales = append(sucursales, s)
	}
	return sucursales, rows.Err()
}

func (r *CatalogoRepository) GetSucursal(id int) (*db.Sucursal, error) {
	var s db.Sucursal
	err := r.DB.QueryRow(`SELECT id, nombre, direccion FROM sucursales WHERE id = $1`, id).
		Scan(&s.ID, &s.Nombre, &s.Direccion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *CatalogoRepository) CreateSucursal(s *db.Sucursal) error {
	query := `INSERT INTO sucursales (nombre, direccion) VALUES ($1, $2) RETURNING id`
	return r.DB.QueryRow(query, s.Nombre, s.Direccion).Scan(&s.ID)
}

func (r *CatalogoRepository) UpdateSucursal(s *db.Sucursal) error {
	_, err := r.DB.Exec(`UPDATE sucursales SET nombre = $1, direccion = $2 WHERE id = $3`,
		s.Nombre, s.Direccion, s.ID)
	return err
}

func (r *CatalogoRepository) DeleteSucursal(id int) error {
	_, err := r.DB.Exec(`DELETE FROM sucursales WHERE id = $1`, id)
	return err
}

func (r *CatalogoRepository) ListSectores() ([]db.Sector, error) {
	rows, err := r.DB.Query(`SELECT id, nombre FROM sectores ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sectores []db.Sector
	for rows.Next() {
		var s db.Sector
		if err := rows.Scan(&s.ID, &s.Nombre); err != nil {
			return nil, err
		}
		sectores = append(sectores, s)
	}
	return sectores, rows.Err()
}

func (r *CatalogoRepository) CreateSector(s *db.Sector) error {
	return r.DB.QueryRow(`INSERT INTO sectores (nombre) VALUES ($1) RETURNING id`, s.Nombre).Scan(&s.ID)
}

func (r *CatalogoRepository) UpdateSector(s *db.Sector) error {
	_, err := r.DB.Exec(`UPDATE sectores SET nombre = $1 WHERE id = $2`, s.Nombre, s.ID)
	return err
}

func (r *CatalogoRepository) DeleteSector(id int) error {
	_, err := r.DB.Exec(`DELETE FROM sectores WHERE id = $1`, id)
	return err
}

func (r *CatalogoRepository) ListHabilidades() ([]db.Habilidad, error) {
	rows, err := r.DB.Query(`SELECT id, nombre FROM habilidades ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habilidades []db.Habilidad
	for rows.Next() {
		var h db.Habilidad
		if err := rows.Scan(&h.ID, &h.Nombre); err != nil {
			return nil, err
		}
		habilidades = append(habilidades, h)
	}
	return habilidades, rows.Err()
}

func (r *CatalogoRepository) CreateHabilidad(h *db.Habilidad) error {
	return r.DB.QueryRow(`INSERT INTO habilidades (nombre) VALUES ($1) RETURNING id`, h.Nombre).Scan(&h.ID)
}

func (r *CatalogoRepository) UpdateHabilidad(h *db.Habilidad) error {
	_, err := r.DB.Exec(`UPDATE habilidades SET nombre = $1 WHERE id = $2`, h.Nombre, h.ID)
	return err
}

func (r *CatalogoRepository) DeleteHabilidad(id int) error {
	_, err := r.DB.Exec(`DELETE FROM habilidades WHERE id = $1`, id)
	return err
}

// Asignación sucursal ↔ sector. ON CONFLICT DO NOTHING para que repetir el
// toggle no falle.
func (r *CatalogoRepository) AsignarSector(sucursalID, sectorID int) error {
	_, err := r.DB.Exec(`INSERT INTO sucursal_sectores (sucursal_id, sector_id)
	                     VALUES ($1, $2) ON CONFLICT DO NOTHING`, sucursalID, sectorID)
	return err
}

func (r *CatalogoRepository) DesasignarSector(sucursalID, sectorID int) error {
	_, err := r.DB.Exec(`DELETE FROM sucursal_sectores WHERE sucursal_id = $1 AND sector_id = $2`,
		sucursalID, sectorID)
	return err
}
