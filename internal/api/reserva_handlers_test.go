package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salabelleza/internal/booking"
	"salabelleza/internal/repository"
	"salabelleza/internal/service"
)

func reservaRouter(conn *sql.DB) *mux.Router {
	drafts := booking.NewStore()
	turnoSvc := service.NewTurnoService(
		repository.NewTurnoRepository(conn),
		repository.NewClienteRepository(conn),
		nil,
	)
	h := NewReservaHandler(
		drafts,
		repository.NewCatalogoRepository(conn),
		repository.NewServicioRepository(conn),
		repository.NewEmpleadaRepository(conn),
		turnoSvc,
	)

	r := mux.NewRouter()
	r.HandleFunc("/api/Reserva", h.CreateReserva).Methods("POST")
	r.HandleFunc("/api/Reserva/{id}", h.GetReserva).Methods("GET")
	r.HandleFunc("/api/Reserva/{id}/reset", h.ResetReserva).Methods("POST")
	r.HandleFunc("/api/Reserva/{id}/sucursal", h.SetSucursal).Methods("PUT")
	r.HandleFunc("/api/Reserva/{id}/servicios", h.AddServicios).Methods("PUT")
	r.HandleFunc("/api/Reserva/{id}/servicios/{servicioId}", h.RemoveServicio).Methods("DELETE")
	r.HandleFunc("/api/Reserva/{id}/horario", h.SetHorario).Methods("PUT")
	r.HandleFunc("/api/Reserva/{id}/empleada", h.SetEmpleada).Methods("PUT")
	r.HandleFunc("/api/Reserva/{id}/cliente", h.SetCliente).Methods("PUT")
	r.HandleFunc("/api/Reserva/{id}/confirmar", h.ConfirmarReserva).Methods("POST")
	return r
}

func doJSON(t *testing.T, router *mux.Router, method, url string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestAsistenteDeReservaCompleto(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	router := reservaRouter(conn)

	// Paso 0: abrir la sesión
	rec, body := doJSON(t, router, "POST", "/api/Reserva", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "sucursal", body["paso"])
	reservaID, ok := body["reservaId"].(string)
	require.True(t, ok)

	base := "/api/Reserva/" + reservaID

	// Paso 1: sucursal
	mock.ExpectQuery("FROM sucursales").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "direccion"}).
			AddRow(3, "Centro", "Av. Corrientes 1234"))
	rec, body = doJSON(t, router, "PUT", base+"/sucursal", map[string]interface{}{"sucursalId": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "servicios", body["paso"])

	// Paso 2: servicios
	mock.ExpectQuery("FROM servicios").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "duracion_minutos", "precio", "sector_id"}).
			AddRow(5, "Corte", 30, 1500.0, nil))
	rec, body = doJSON(t, router, "PUT", base+"/servicios", map[string]interface{}{
		"selecciones": []map[string]interface{}{{"servicioId": 5}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "eleccion", body["paso"])
	assert.Equal(t, 30.0, body["duracionTotalMinutos"])
	assert.Equal(t, 1500.0, body["precioTotal"])

	// Paso 3: horario primero
	rec, body = doJSON(t, router, "PUT", base+"/horario", map[string]interface{}{
		"fechaHora": "2025-06-10T10:00:00",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "empleada", body["paso"])

	// Paso 4: profesional
	mock.ExpectQuery("FROM empleadas").
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "apellido", "correo", "telefono", "sucursal_id"}).
			AddRow(9, "Ana", "Gómez", "ana@salon.com", "1144440000", 3))
	rec, body = doJSON(t, router, "PUT", base+"/empleada", map[string]interface{}{"empleadaId": 9})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirmacion", body["paso"])

	// Paso 5: cliente sin cuenta
	rec, _ = doJSON(t, router, "PUT", base+"/cliente", map[string]interface{}{
		"nombre": "Laura", "apellido": "Pérez", "telefono": "1155550000", "email": "laura@mail.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Confirmación: se registra el cliente, el turno y sus detalles.
	ahora := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM clientes").
		WithArgs("1155550000").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO clientes").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(77))
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO turnos").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec("INSERT INTO turno_detalles").
		WithArgs(42, 5).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM turnos t").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "fecha_hora", "empleada_id", "empleada_nombre",
			"cliente_id", "cliente_nombre", "telefono", "email",
			"sucursal_id", "estado", "creado_en", "actualizado_en",
		}).AddRow(42, ahora, 9, "Ana Gómez", 77, "Laura Pérez", "1155550000", "laura@mail.com",
			3, "confirmado", ahora, ahora))
	mock.ExpectQuery("FROM turno_detalles td").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"servicio_id", "nombre", "duracion_minutos", "precio"}).
			AddRow(5, "Corte", 30, 1500.0))

	rec, body = doJSON(t, router, "POST", base+"/confirmar", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 42.0, body["id"])
	assert.Equal(t, "confirmado", body["estado"])

	// El borrador quedó limpio para la próxima reserva.
	rec, body = doJSON(t, router, "GET", base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sucursal", body["paso"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmarReservaIncompletaDevuelve422(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	router := reservaRouter(conn)

	rec, body := doJSON(t, router, "POST", "/api/Reserva", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	reservaID := body["reservaId"].(string)

	rec, _ = doJSON(t, router, "POST", "/api/Reserva/"+reservaID+"/confirmar", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "falta elegir sucursal")
}

func TestReservaInexistenteDevuelve404(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	router := reservaRouter(conn)
	rec, _ := doJSON(t, router, "GET", "/api/Reserva/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuitarServicioVuelveAlPasoDeServicios(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	router := reservaRouter(conn)

	_, body := doJSON(t, router, "POST", "/api/Reserva", nil)
	reservaID := body["reservaId"].(string)
	base := "/api/Reserva/" + reservaID

	mock.ExpectQuery("FROM sucursales").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "direccion"}).
			AddRow(3, "Centro", "Av. Corrientes 1234"))
	doJSON(t, router, "PUT", base+"/sucursal", map[string]interface{}{"sucursalId": 3})

	mock.ExpectQuery("FROM servicios").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "duracion_minutos", "precio", "sector_id"}).
			AddRow(5, "Corte", 30, 1500.0, nil))
	doJSON(t, router, "PUT", base+"/servicios", map[string]interface{}{
		"selecciones": []map[string]interface{}{{"servicioId": 5}},
	})

	rec, body := doJSON(t, router, "DELETE", base+"/servicios/5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "servicios", body["paso"])
}

// Una fila que no existe es 404; una falla de base es 500. Las dos cosas
// salían 404 y el front no distinguía un ID viejo de una base caída.
func TestSetSucursalDistingueFaltanteDeErrorDeBase(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	router := reservaRouter(conn)
	_, body := doJSON(t, router, "POST", "/api/Reserva", nil)
	base := "/api/Reserva/" + body["reservaId"].(string)

	mock.ExpectQuery("FROM sucursales").WillReturnError(sql.ErrNoRows)
	rec, _ := doJSON(t, router, "PUT", base+"/sucursal", map[string]interface{}{"sucursalId": 99})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	mock.ExpectQuery("FROM sucursales").WillReturnError(sql.ErrConnDone)
	rec, _ = doJSON(t, router, "PUT", base+"/sucursal", map[string]interface{}{"sucursalId": 3})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAddServiciosDistingueFaltanteDeErrorDeBase(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	router := reservaRouter(conn)
	_, body := doJSON(t, router, "POST", "/api/Reserva", nil)
	base := "/api/Reserva/" + body["reservaId"].(string)

	payload := map[string]interface{}{
		"selecciones": []map[string]interface{}{{"servicioId": 99}},
	}

	// El ID pedido no existe: la consulta vuelve vacía.
	mock.ExpectQuery("FROM servicios").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "duracion_minutos", "precio", "sector_id"}))
	rec, _ := doJSON(t, router, "PUT", base+"/servicios", payload)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	mock.ExpectQuery("FROM servicios").WillReturnError(sql.ErrConnDone)
	rec, _ = doJSON(t, router, "PUT", base+"/servicios", payload)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
