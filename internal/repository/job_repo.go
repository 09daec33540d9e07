package repository

import (
	"database/sql"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetTurnosConfirmadosVencidos devuelve los IDs de turnos confirmados cuyo
// horario de fin (inicio + duración de sus servicios) ya pasó.
func (r *JobRepository) GetTurnosConfirmadosVencidos() ([]int, error) {
	query := `
	SELECT t.id
	FROM turnos t
	JOIN turno_detalles td ON td.turno_id = t.id
	JOIN servicios s ON s.id = td.servicio_id
	WHERE t.estado = 'confirmado'
	GROUP BY t.id, t.fecha_hora
	HAVING t.fecha_hora + make_interval(mins => COALESCE(SUM(s.duracion_minutos), 0)::int) < NOW()`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *JobRepository) UpdateEstados(ids []int, estado string) error {
	_, err := r.DB.Exec(`UPDATE turnos SET estado = $1, actualizado_en = NOW() WHERE id = ANY($2)`,
		estado, pq.Array(ids))
	return err
}
