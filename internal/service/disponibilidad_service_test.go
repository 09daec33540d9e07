package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salabelleza/internal/db"
	"salabelleza/internal/entities"
	"salabelleza/internal/repository"
)

type stubAgenda struct {
	empleadas   map[int]*db.Empleada
	calificadas []db.Empleada
	periodos    map[int][]db.PeriodoTrabajo
	licencias   map[int]bool
	ocupaciones map[int][]repository.Ocupacion
}

func (s *stubAgenda) GetEmpleada(id int) (*db.Empleada, error) {
	return s.empleadas[id], nil
}

func (s *stubAgenda) EmpleadasCalificadas(sucursalID int, servicioIDs []int) ([]db.Empleada, error) {
	return s.calificadas, nil
}

func (s *stubAgenda) PeriodosDeDia(empleadaID, diaSemana int) ([]db.PeriodoTrabajo, error) {
	return s.periodos[empleadaID], nil
}

func (s *stubAgenda) TieneLicencia(empleadaID int, fecha time.Time) (bool, error) {
	return s.licencias[empleadaID], nil
}

func (s *stubAgenda) OcupacionesDeFecha(empleadaID int, fecha time.Time) ([]repository.Ocupacion, error) {
	return s.ocupaciones[empleadaID], nil
}

type stubServicios struct {
	servicios []db.Servicio
}

func (s *stubServicios) GetServiciosPorIDs(ids []int) ([]db.Servicio, error) {
	return s.servicios, nil
}

func periodo(inicio, fin string) db.PeriodoTrabajo {
	return db.PeriodoTrabajo{HoraInicio: inicio, HoraFin: fin}
}

func TestHorariosDisponiblesRespetaOcupaciones(t *testing.T) {
	// 2025-06-10 es martes. Período 09:00-11:00, servicios por 60 minutos y
	// un turno tomado a las 10:00 por 30: el único inicio libre es 09:00.
	agenda := &stubAgenda{
		empleadas: map[int]*db.Empleada{9: {ID: 9, Nombre: "Ana"}},
		periodos:  map[int][]db.PeriodoTrabajo{9: {periodo("09:00", "11:00")}},
		licencias: map[int]bool{},
		ocupaciones: map[int][]repository.Ocupacion{9: {
			{Inicio: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC), DuracionMinutos: 30},
		}},
	}
	svc := NewDisponibilidadService(agenda, &stubServicios{servicios: []db.Servicio{
		{ID: 5, DuracionMinutos: 30},
		{ID: 6, DuracionMinutos: 30},
	}})

	resp, err := svc.HorariosDisponibles(entities.DisponibilidadRequest{
		EmpleadaID:  9,
		Fecha:       "2025-06-10",
		ServicioIDs: []int{5, 6},
		SucursalID:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.DuracionMinutos)
	require.Len(t, resp.Bloques, 1)
	assert.Equal(t, "09:00", resp.Bloques[0].HoraInicio)
	assert.Equal(t, "10:00", resp.Bloques[0].HoraFin)
	assert.Equal(t, []int{9}, resp.Bloques[0].EmpleadaIDs)
}

func TestHorariosDisponiblesConLicenciaNoDevuelveBloques(t *testing.T) {
	agenda := &stubAgenda{
		empleadas: map[int]*db.Empleada{9: {ID: 9}},
		periodos:  map[int][]db.PeriodoTrabajo{9: {periodo("09:00", "18:00")}},
		licencias: map[int]bool{9: true},
	}
	svc := NewDisponibilidadService(agenda, &stubServicios{servicios: []db.Servicio{{ID: 5, DuracionMinutos: 30}}})

	resp, err := svc.HorariosDisponibles(entities.DisponibilidadRequest{
		EmpleadaID:  9,
		Fecha:       "2025-06-10",
		ServicioIDs: []int{5},
		SucursalID:  1,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Bloques)
}

func TestHorariosDisponiblesAnotaTodasLasCalificadas(t *testing.T) {
	// Sin empleada fija se calcula sobre todas las calificadas y cada bloque
	// lista quiénes están libres.
	agenda := &stubAgenda{
		calificadas: []db.Empleada{{ID: 2}, {ID: 7}},
		periodos: map[int][]db.PeriodoTrabajo{
			2: {periodo("09:00", "10:00")},
			7: {periodo("09:00", "09:45")},
		},
		licencias: map[int]bool{},
	}
	svc := NewDisponibilidadService(agenda, &stubServicios{servicios: []db.Servicio{{ID: 5, DuracionMinutos: 45}}})

	resp, err := svc.HorariosDisponibles(entities.DisponibilidadRequest{
		Fecha:       "2025-06-10",
		ServicioIDs: []int{5},
		SucursalID:  1,
	})
	require.NoError(t, err)

	require.Len(t, resp.Bloques, 2)
	assert.Equal(t, "09:00", resp.Bloques[0].HoraInicio)
	assert.Equal(t, []int{2, 7}, resp.Bloques[0].EmpleadaIDs)
	assert.Equal(t, "09:15", resp.Bloques[1].HoraInicio)
	assert.Equal(t, []int{2}, resp.Bloques[1].EmpleadaIDs)
}

func TestHorariosDisponiblesEmpleadaInexistente(t *testing.T) {
	agenda := &stubAgenda{empleadas: map[int]*db.Empleada{}}
	svc := NewDisponibilidadService(agenda, &stubServicios{servicios: []db.Servicio{{ID: 5, DuracionMinutos: 30}}})

	_, err := svc.HorariosDisponibles(entities.DisponibilidadRequest{
		EmpleadaID:  99,
		Fecha:       "2025-06-10",
		ServicioIDs: []int{5},
		SucursalID:  1,
	})
	assert.Error(t, err)
}

func TestHorariosDisponiblesFechaInvalida(t *testing.T) {
	svc := NewDisponibilidadService(&stubAgenda{}, &stubServicios{})
	_, err := svc.HorariosDisponibles(entities.DisponibilidadRequest{
		Fecha:       "10/06/2025",
		ServicioIDs: []int{5},
		SucursalID:  1,
	})
	assert.Error(t, err)
}
