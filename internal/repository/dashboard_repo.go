package repository

import (
	"database/sql"

	"salabelleza/internal/entities"
)

type DashboardRepository struct {
	DB *sql.DB
}

func NewDashboardRepository(database *sql.DB) *DashboardRepository {
	return &DashboardRepository{DB: database}
}

func (r *DashboardRepository) TurnosPorEstado(desde, hasta string) (map[string]int, error) {
	rows, err := r.DB.Query(`
		SELECT estado, COUNT(*) FROM turnos
		WHERE DATE(fecha_hora) BETWEEN $1 AND $2
		GROUP BY estado`, desde, hasta)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	porEstado := make(map[string]int)
	for rows.Next() {
		var estado string
		var n int
		if err := rows.Scan(&estado, &n); err != nil {
			return nil, err
		}
		porEstado[estado] = n
	}
	return porEstado, rows.Err()
}

// IngresosEstimados suma el precio de los servicios de turnos no cancelados
// en el rango.
func (r *DashboardRepository) IngresosEstimados(desde, hasta string) (float64, error) {
	var ingresos float64
	err := r.DB.QueryRow(`
		SELECT COALESCE(SUM(s.precio), 0)
		FROM turnos t
		JOIN turno_detalles td ON td.turno_id = t.id
		JOIN servicios s ON s.id = td.servicio_id
		WHERE t.estado <> 'cancelado' AND DATE(t.fecha_hora) BETWEEN $1 AND $2`,
		desde, hasta).Scan(&ingresos)
	return ingresos, err
}

func (r *DashboardRepository) TurnosPorDia(desde, hasta string) ([]entities.TurnosPorDia, error) {
	rows, err := r.DB.Query(`
		SELECT TO_CHAR(DATE(fecha_hora), 'YYYY-MM-DD'), COUNT(*)
		FROM turnos
		WHERE DATE(fecha_hora) BETWEEN $1 AND $2
		GROUP BY DATE(fecha_hora)
		ORDER BY DATE(fecha_hora)`, desde, hasta)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var porDia []entities.TurnosPorDia
	for rows.Next() {
		var d entities.TurnosPorDia
		if err := rows.Scan(&d.Fecha, &d.Turnos); err != nil {
			return nil, err
		}
		porDia = append(porDia, d)
	}
	return porDia, rows.Err()
}

func (r *DashboardRepository) ServiciosTop(desde, hasta string, limite int) ([]entities.ServicioTop, error) {
	rows, err := r.DB.Query(`
		SELECT s.id, s.nombre, COUNT(*)
		FROM turno_detalles td
		JOIN turnos t ON t.id = td.turno_id
		JOIN servicios s ON s.id = td.servicio_id
		WHERE t.estado <> 'cancelado' AND DATE(t.fecha_hora) BETWEEN $1 AND $2
		GROUP BY s.id, s.nombre
		ORDER BY COUNT(*) DESC, s.nombre
		LIMIT $3`, desde, hasta, limite)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []entities.ServicioTop
	for rows.Next() {
		var s entities.ServicioTop
		if err := rows.Scan(&s.ServicioID, &s.Nombre, &s.Turnos); err != nil {
			return nil, err
		}
		top = append(top, s)
	}
	return top, rows.Err()
}
