package repository

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/lib/pq"

	"salabelleza/internal/db"
)

// Ocupacion es un turno ya tomado: inicio más la duración sumada de sus
// servicios, suficiente para chequear solapamientos.
type Ocupacion struct {
	Inicio          time.Time
	DuracionMinutos int
}

// AgendaRepository es la vista de lectura que necesita el cálculo de
// disponibilidad. EmpleadaRepository la implementa; los tests la stubean.
type AgendaRepository interface {
	GetEmpleada(id int) (*db.Empleada, error)
	EmpleadasCalificadas(sucursalID int, servicioIDs []int) ([]db.Empleada, error)
	PeriodosDeDia(empleadaID, diaSemana int) ([]db.PeriodoTrabajo, error)
	TieneLicencia(empleadaID int, fecha time.Time) (bool, error)
	OcupacionesDeFecha(empleadaID int, fecha time.Time) ([]Ocupacion, error)
}

type EmpleadaRepository struct {
	DB *sql.DB
}

func NewEmpleadaRepository(database *sql.DB) *EmpleadaRepository {
	return &EmpleadaRepository{DB: database}
}

func (r *EmpleadaRepository) ListEmpleadas(sucursalID int) ([]db.Empleada, error) {
	query := `SELECT id, nombre, apellido, correo, telefono, sucursal_id FROM empleadas`
	args := []interface{}{}
	if sucursalID > 0 {
		query += " WHERE sucursal_id = $1"
		args = append(args, sucursalID)
	}
	query += " ORDER BY apellido, nombre"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var empleadas []db.Empleada
	for rows.Next() {
		var e db.Empleada
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Apellido, &e.Correo, &e.Telefono, &e.SucursalID); err != nil {
			return nil, err
		}
		empleadas = append(empleadas, e)
	}
	return empleadas, rows.Err()
}

func (r *EmpleadaRepository) GetEmpleada(id int) (*db.Empleada, error) {
	var e db.Empleada
	err := r.DB.QueryRow(`SELECT id, nombre, apellido, correo, telefono, sucursal_id
	                      FROM empleadas WHERE id = $1`, id).
		Scan(&e.ID, &e.Nombre, &e.Apellido, &e.Correo, &e.Telefono, &e.SucursalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmpleadaRepository) CreateEmpleada(e *db.Empleada) error {
	query := `INSERT INTO empleadas (nombre, apellido, correo, telefono, sucursal_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.DB.QueryRow(query, e.Nombre, e.Apellido, e.Correo, e.Telefono, e.SucursalID).Scan(&e.ID)
}

func (r *EmpleadaRepository) UpdateEmpleada(e *db.Empleada) error {
	_, err := r.DB.Exec(`UPDATE empleadas SET nombre = $1, apellido = $2, correo = $3, telefono = $4, sucursal_id = $5
	                     WHERE id = $6`, e.Nombre, e.Apellido, e.Correo, e.Telefono, e.SucursalID, e.ID)
	return err
}

func (r *EmpleadaRepository) DeleteEmpleada(id int) error {
	_, err := r.DB.Exec(`DELETE FROM empleadas WHERE id = $1`, id)
	return err
}

// EmpleadasCalificadas lista las empleadas de la sucursal cuyas habilidades
// cubren todas las requeridas por los servicios pedidos. Un servicio sin
// habilidades requeridas no restringe nada.
func (r *EmpleadaRepository) EmpleadasCalificadas(sucursalID int, servicioIDs []int) ([]db.Empleada, error) {
	query := `
	SELECT e.id, e.nombre, e.apellido, e.correo, e.telefono, e.sucursal_id
	FROM empleadas e
	WHERE e.sucursal_id = $1
	  AND NOT EXISTS (
		SELECT sh.habilidad_id
		FROM servicio_habilidades sh
		WHERE sh.servicio_id = ANY($2)
		EXCEPT
		SELECT eh.habilidad_id
		FROM empleada_habilidades eh
		WHERE eh.empleada_id = e.id
	  )
	ORDER BY e.apellido, e.nombre`

	rows, err := r.DB.Query(query, sucursalID, pq.Array(servicioIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var empleadas []db.Empleada
	for rows.Next() {
		var e db.Empleada
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Apellido, &e.Correo, &e.Telefono, &e.SucursalID); err != nil {
			return nil, err
		}
		empleadas = append(empleadas, e)
	}
	return empleadas, rows.Err()
}

func (r *EmpleadaRepository) AsignarHabilidad(empleadaID, habilidadID int) error {
	_, err := r.DB.Exec(`INSERT INTO empleada_habilidades (empleada_id, habilidad_id)
	                     VALUES ($1, $2) ON CONFLICT DO NOTHING`, empleadaID, habilidadID)
	return err
}

func (r *EmpleadaRepository) DesasignarHabilidad(empleadaID, habilidadID int) error {
	_, err := r.DB.Exec(`DELETE FROM empleada_habilidades WHERE empleada_id = $1 AND habilidad_id = $2`,
		empleadaID, habilidadID)
	return err
}

func (r *EmpleadaRepository) AsignarSector(empleadaID, sectorID int) error {
	_, err := r.DB.Exec(`INSERT INTO empleada_sectores (empleada_id, sector_id)
	                     VALUES ($1, $2) ON CONFLICT DO NOTHING`, empleadaID, sectorID)
	return err
}

func (r *EmpleadaRepository) DesasignarSector(empleadaID, sectorID int) error {
	_, err := r.DB.Exec(`DELETE FROM empleada_sectores WHERE empleada_id = $1 AND sector_id = $2`,
		empleadaID, sectorID)
	return err
}

func (r *EmpleadaRepository) ListPeriodos(empleadaID int) ([]db.PeriodoTrabajo, error) {
	rows, err := r.DB.Query(`SELECT id, empleada_id, dia_semana, hora_inicio, hora_fin
	                         FROM periodos_trabajo WHERE empleada_id = $1
	                         ORDER BY dia_semana, hora_inicio`, empleadaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periodos []db.PeriodoTrabajo
	for rows.Next() {
		var p db.PeriodoTrabajo
		if err := rows.Scan(&p.ID, &p.EmpleadaID, &p.DiaSemana, &p.HoraInicio, &p.HoraFin); err != nil {
			return nil, err
		}
		periodos = append(periodos, p)
	}
	return periodos, rows.Err()
}

func (r *EmpleadaRepository) CreatePeriodo(p *db.PeriodoTrabajo) error {
	query := `INSERT INTO periodos_trabajo (empleada_id, dia_semana, hora_inicio, hora_fin)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.DB.QueryRow(query, p.EmpleadaID, p.DiaSemana, p.HoraInicio, p.HoraFin).Scan(&p.ID)
}

func (r *EmpleadaRepository) DeletePeriodo(empleadaID, periodoID int) error {
	_, err := r.DB.Exec(`DELETE FROM periodos_trabajo WHERE id = $1 AND empleada_id = $2`,
		periodoID, empleadaID)
	return err
}

func (r *EmpleadaRepository) ListLicencias(empleadaID int) ([]db.Licencia, error) {
	rows, err := r.DB.Query(`SELECT id, empleada_id, fecha_inicio, fecha_fin, COALESCE(motivo, '')
	                         FROM licencias WHERE empleada_id = $1
	                         ORDER BY fecha_inicio DESC`, empleadaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var licencias []db.Licencia
	for rows.Next() {
		var l db.Licencia
		if err := rows.Scan(&l.ID, &l.EmpleadaID, &l.FechaInicio, &l.FechaFin, &l.Motivo); err != nil {
			return nil, err
		}
		licencias = append(licencias, l)
	}
	return licencias, rows.Err()
}

func (r *EmpleadaRepository) CreateLicencia(l *db.Licencia) error {
	query := `INSERT INTO licencias (empleada_id, fecha_inicio, fecha_fin, motivo)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.DB.QueryRow(query, l.EmpleadaID, l.FechaInicio, l.FechaFin, l.Motivo).Scan(&l.ID)
}

func (r *EmpleadaRepository) DeleteLicencia(empleadaID, licenciaID int) error {
	_, err := r.DB.Exec(`DELETE FROM licencias WHERE id = $1 AND empleada_id = $2`,
		licenciaID, empleadaID)
	return err
}

func (r *EmpleadaRepository) PeriodosDeDia(empleadaID, diaSemana int) ([]db.PeriodoTrabajo, error) {
	rows, err := r.DB.Query(`SELECT id, empleada_id, dia_semana, hora_inicio, hora_fin
	                         FROM periodos_trabajo WHERE empleada_id = $1 AND dia_semana = $2
	                         ORDER BY hora_inicio`, empleadaID, diaSemana)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periodos []db.PeriodoTrabajo
	for rows.Next() {
		var p db.PeriodoTrabajo
		if err := rows.Scan(&p.ID, &p.EmpleadaID, &p.DiaSemana, &p.HoraInicio, &p.HoraFin); err != nil {
			return nil, err
		}
		periodos = append(periodos, p)
	}
	return periodos, rows.Err()
}

func (r *EmpleadaRepository) TieneLicencia(empleadaID int, fecha time.Time) (bool, error) {
	var existe bool
	err := r.DB.QueryRow(`SELECT EXISTS (
		SELECT 1 FROM licencias
		WHERE empleada_id = $1 AND fecha_inicio <= $2 AND fecha_fin >= $2
	)`, empleadaID, fecha).Scan(&existe)
	return existe, err
}

// OcupacionesDeFecha devuelve los turnos no cancelados de la empleada en la
// fecha dada, con la duración sumada de sus detalles.
func (r *EmpleadaRepository) OcupacionesDeFecha(empleadaID int, fecha time.Time) ([]Ocupacion, error) {
	query := `
	SELECT t.fecha_hora, COALESCE(SUM(s.duracion_minutos), 0)
	FROM turnos t
	JOIN turno_detalles td ON td.turno_id = t.id
	JOIN servicios s ON s.id = td.servicio_id
	WHERE t.empleada_id = $1
	  AND t.estado <> 'cancelado'
	  AND DATE(t.fecha_hora) = DATE($2::timestamptz)
	GROUP BY t.id, t.fecha_hora
	ORDER BY t.fecha_hora`

	rows, err := r.DB.Query(query, empleadaID, fecha)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ocupaciones []Ocupacion
	for rows.Next() {
		var o Ocupacion
		if err := rows.Scan(&o.Inicio, &o.DuracionMinutos); err != nil {
			return nil, err
		}
		ocupaciones = append(ocupaciones, o)
	}
	return ocupaciones, rows.Err()
}

// helper para armar filtros dinámicos al estilo del listado de turnos
func placeholder(idx int) string {
	return "$" + strconv.Itoa(idx)
}
