package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"salabelleza/internal/db"
	"salabelleza/internal/entities"
)

type TurnoRepository interface {
	Create(t *db.Turno, servicioIDs []int) error
	GetByID(id int) (*entities.TurnoResponse, error)
	List(fecha string, sucursalID int, estado string) ([]entities.TurnoResponse, error)
	UpdateEstado(id int, estado string) error
	Delete(id int) error
}

type turnoRepository struct {
	db *sql.DB
}

func NewTurnoRepository(database *sql.DB) TurnoRepository {
	return &turnoRepository{db: database}
}

// Create inserta el turno y sus detalles en una transacción: un turno sin
// detalles no debe existir.
func (r *turnoRepository) Create(t *db.Turno, servicioIDs []int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO turnos (fecha_hora, empleada_id, cliente_id, sucursal_id, estado, creado_en, actualizado_en)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err = tx.QueryRow(query, t.FechaHora, t.EmpleadaID, t.ClienteID, t.SucursalID, t.Estado, t.CreadoEn, t.ActualizadoEn).
		Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("error inserting turno: %w", err)
	}

	for _, servicioID := range servicioIDs {
		if _, err := tx.Exec(`INSERT INTO turno_detalles (turno_id, servicio_id) VALUES ($1, $2)`,
			t.ID, servicioID); err != nil {
			return fmt.Errorf("error inserting turno detalle: %w", err)
		}
	}

	return tx.Commit()
}

func (r *turnoRepository) GetByID(id int) (*entities.TurnoResponse, error) {
	var res entities.TurnoResponse
	query := `
	SELECT t.id, t.fecha_hora, t.empleada_id, e.nombre || ' ' || e.apellido,
	       t.cliente_id, c.nombre || ' ' || c.apellido, c.telefono, COALESCE(c.email, ''),
	       t.sucursal_id, t.estado, t.creado_en, t.actualizado_en
	FROM turnos t
	JOIN empleadas e ON e.id = t.empleada_id
	JOIN clientes c ON c.id = t.cliente_id
	WHERE t.id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&res.ID, &res.FechaHora, &res.EmpleadaID, &res.EmpleadaNombre,
		&res.ClienteID, &res.ClienteNombre, &res.ClienteTelefono, &res.ClienteEmail,
		&res.SucursalID, &res.Estado, &res.CreadoEn, &res.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("turno %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying turno: %w", err)
	}

	detalles, err := r.detallesDeTurno(res.ID)
	if err != nil {
		return nil, err
	}
	res.Detalles = detalles
	return &res, nil
}

func (r *turnoRepository) List(fecha string, sucursalID int, estado string) ([]entities.TurnoResponse, error) {
	query := `
	SELECT t.id, t.fecha_hora, t.empleada_id, e.nombre || ' ' || e.apellido,
	       t.cliente_id, c.nombre || ' ' || c.apellido, c.telefono, COALESCE(c.email, ''),
	       t.sucursal_id, t.estado, t.creado_en, t.actualizado_en
	FROM turnos t
	JOIN empleadas e ON e.id = t.empleada_id
	JOIN clientes c ON c.id = t.cliente_id
	WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if fecha != "" {
		query += " AND DATE(t.fecha_hora) = " + placeholder(idx)
		args = append(args, fecha)
		idx++
	}
	if sucursalID > 0 {
		query += " AND t.sucursal_id = " + placeholder(idx)
		args = append(args, sucursalID)
		idx++
	}
	if estado != "" {
		query += " AND t.estado = " + placeholder(idx)
		args = append(args, estado)
		idx++
	}
	query += " ORDER BY t.fecha_hora DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turnos []entities.TurnoResponse
	for rows.Next() {
		var res entities.TurnoResponse
		err := rows.Scan(
			&res.ID, &res.FechaHora, &res.EmpleadaID, &res.EmpleadaNombre,
			&res.ClienteID, &res.ClienteNombre, &res.ClienteTelefono, &res.ClienteEmail,
			&res.SucursalID, &res.Estado, &res.CreadoEn, &res.ActualizadoEn,
		)
		if err != nil {
			return nil, err
		}
		turnos = append(turnos, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range turnos {
		detalles, err := r.detallesDeTurno(turnos[i].ID)
		if err != nil {
			return nil, err
		}
		turnos[i].Detalles = detalles
	}
	return turnos, nil
}

func (r *turnoRepository) UpdateEstado(id int, estado string) error {
	result, err := r.db.Exec(`UPDATE turnos SET estado = $1, actualizado_en = $2 WHERE id = $3`,
		estado, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("turno %d not found", id)
	}
	return nil
}

func (r *turnoRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM turnos WHERE id = $1`, id)
	return err
}

func (r *turnoRepository) detallesDeTurno(turnoID int) ([]entities.TurnoDetalleResponse, error) {
	rows, err := r.db.Query(`
		SELECT td.servicio_id, s.nombre, s.duracion_minutos, s.precio
		FROM turno_detalles td
		JOIN servicios s ON s.id = td.servicio_id
		WHERE td.turno_id = $1
		ORDER BY td.id`, turnoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var detalles []entities.TurnoDetalleResponse
	for rows.Next() {
		var d entities.TurnoDetalleResponse
		if err := rows.Scan(&d.ServicioID, &d.Nombre, &d.DuracionMinutos, &d.Precio); err != nil {
			return nil, err
		}
		detalles = append(detalles, d)
	}
	return detalles, rows.Err()
}
