package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salabelleza/internal/db"
)

func TestTurnoCreateInsertaDetallesEnTransaccion(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewTurnoRepository(conn)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO turnos").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec("INSERT INTO turno_detalles").
		WithArgs(42, 5).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO turno_detalles").
		WithArgs(42, 6).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	turno := &db.Turno{
		FechaHora:  time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
		EmpleadaID: 9,
		ClienteID:  77,
		SucursalID: 3,
		Estado:     "confirmado",
	}
	require.NoError(t, repo.Create(turno, []int{5, 6}))
	assert.Equal(t, 42, turno.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTurnoCreateRollbackSiFallaUnDetalle(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewTurnoRepository(conn)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO turnos").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec("INSERT INTO turno_detalles").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = repo.Create(&db.Turno{EmpleadaID: 9, ClienteID: 77}, []int{5})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTurnoUpdateEstadoInexistente(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewTurnoRepository(conn)

	mock.ExpectExec("UPDATE turnos SET estado").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateEstado(99, "cancelado")
	assert.EqualError(t, err, "turno 99 not found")
}

func TestTurnoListFiltraPorFechaSucursalYEstado(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewTurnoRepository(conn)

	ahora := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	columnas := []string{
		"id", "fecha_hora", "empleada_id", "empleada_nombre",
		"cliente_id", "cliente_nombre", "telefono", "email",
		"sucursal_id", "estado", "creado_en", "actualizado_en",
	}
	mock.ExpectQuery("FROM turnos t").
		WithArgs("2025-06-10", 3, "confirmado").
		WillReturnRows(sqlmock.NewRows(columnas).
			AddRow(42, ahora, 9, "Ana Gómez", 77, "Laura Pérez", "1155550000", "laura@mail.com",
				3, "confirmado", ahora, ahora))
	mock.ExpectQuery("FROM turno_detalles td").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"servicio_id", "nombre", "duracion_minutos", "precio"}).
			AddRow(5, "Corte", 30, 1500.0))

	turnos, err := repo.List("2025-06-10", 3, "confirmado")
	require.NoError(t, err)
	require.Len(t, turnos, 1)
	assert.Equal(t, "Ana Gómez", turnos[0].EmpleadaNombre)
	require.Len(t, turnos[0].Detalles, 1)
	assert.Equal(t, 5, turnos[0].Detalles[0].ServicioID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
