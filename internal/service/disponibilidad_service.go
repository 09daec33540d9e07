package service

import (
	"fmt"
	"log"
	"sort"
	"time"

	"salabelleza/internal/db"
	"salabelleza/internal/entities"
	"salabelleza/internal/repository"
	"salabelleza/internal/utils"
)

// Los bloques arrancan cada 15 minutos dentro del período de trabajo.
const pasoBloqueMinutos = 15

// ServicioLector es lo único que el cálculo necesita del catálogo.
type ServicioLector interface {
	GetServiciosPorIDs(ids []int) ([]db.Servicio, error)
}

// DisponibilidadService calcula los horarios libres de las profesionales:
// período de trabajo del día, menos licencias, menos turnos ya tomados,
// para la duración sumada de los servicios pedidos.
type DisponibilidadService struct {
	Agenda    repository.AgendaRepository
	Servicios ServicioLector
}

func NewDisponibilidadService(agenda repository.AgendaRepository, servicios ServicioLector) *DisponibilidadService {
	return &DisponibilidadService{Agenda: agenda, Servicios: servicios}
}

func (s *DisponibilidadService) HorariosDisponibles(req entities.DisponibilidadRequest) (*entities.DisponibilidadResponse, error) {
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida %q", req.Fecha)
	}

	servicios, err := s.Servicios.GetServiciosPorIDs(req.ServicioIDs)
	if err != nil {
		return nil, err
	}
	duracion := 0
	for _, servicio := range servicios {
		duracion += servicio.DuracionMinutos
	}
	if duracion == 0 {
		return nil, fmt.Errorf("los servicios pedidos no tienen duración")
	}

	empleadas, err := s.candidatas(req)
	if err != nil {
		return nil, err
	}

	porInicio := make(map[int][]int)
	for _, empleada := range empleadas {
		libres, err := s.iniciosLibres(empleada.ID, fecha, duracion)
		if err != nil {
			log.Printf("Error calculando disponibilidad de empleada %d: %v", empleada.ID, err)
			return nil, err
		}
		for _, inicio := range libres {
			porInicio[inicio] = append(porInicio[inicio], empleada.ID)
		}
	}

	inicios := make([]int, 0, len(porInicio))
	for inicio := range porInicio {
		inicios = append(inicios, inicio)
	}
	sort.Ints(inicios)

	resp := &entities.DisponibilidadResponse{
		Fecha:           req.Fecha,
		DuracionMinutos: duracion,
		Bloques:         []entities.BloqueHorario{},
	}
	for _, inicio := range inicios {
		ids := porInicio[inicio]
		sort.Ints(ids)
		resp.Bloques = append(resp.Bloques, entities.BloqueHorario{
			HoraInicio:  utils.FormatMin(inicio),
			HoraFin:     utils.FormatMin(inicio + duracion),
			EmpleadaIDs: ids,
		})
	}
	return resp, nil
}

// candidatas resuelve sobre qué profesionales calcular: la pedida, o todas
// las calificadas de la sucursal cuando no se eligió ninguna todavía. Los
// dos flujos del asistente (horario primero o profesional primero) entran
// por acá.
func (s *DisponibilidadService) candidatas(req entities.DisponibilidadRequest) ([]db.Empleada, error) {
	if req.EmpleadaID != 0 {
		empleada, err := s.Agenda.GetEmpleada(req.EmpleadaID)
		if err != nil {
			return nil, err
		}
		if empleada == nil {
			return nil, fmt.Errorf("empleada %d no encontrada", req.EmpleadaID)
		}
		return []db.Empleada{*empleada}, nil
	}
	return s.Agenda.EmpleadasCalificadas(req.SucursalID, req.ServicioIDs)
}

func (s *DisponibilidadService) iniciosLibres(empleadaID int, fecha time.Time, duracion int) ([]int, error) {
	enLicencia, err := s.Agenda.TieneLicencia(empleadaID, fecha)
	if err != nil {
		return nil, err
	}
	if enLicencia {
		return nil, nil
	}

	periodos, err := s.Agenda.PeriodosDeDia(empleadaID, int(fecha.Weekday()))
	if err != nil {
		return nil, err
	}
	if len(periodos) == 0 {
		return nil, nil
	}

	ocupaciones, err := s.Agenda.OcupacionesDeFecha(empleadaID, fecha)
	if err != nil {
		return nil, err
	}

	var libres []int
	for _, periodo := range periodos {
		inicioPeriodo, err := utils.ParseHoraMin(periodo.HoraInicio)
		if err != nil {
			return nil, err
		}
		finPeriodo, err := utils.ParseHoraMin(periodo.HoraFin)
		if err != nil {
			return nil, err
		}

		for inicio := inicioPeriodo; inicio+duracion <= finPeriodo; inicio += pasoBloqueMinutos {
			if ocupado(inicio, inicio+duracion, ocupaciones) {
				continue
			}
			libres = append(libres, inicio)
		}
	}
	return libres, nil
}

func ocupado(inicio, fin int, ocupaciones []repository.Ocupacion) bool {
	for _, o := range ocupaciones {
		oInicio := o.Inicio.Hour()*60 + o.Inicio.Minute()
		if utils.Solapan(inicio, fin, oInicio, oInicio+o.DuracionMinutos) {
			return true
		}
	}
	return false
}
