package service

import (
	"time"

	"salabelleza/internal/entities"
	"salabelleza/internal/repository"
)

const serviciosTopLimite = 5

type DashboardService struct {
	Repo *repository.DashboardRepository
}

func NewDashboardService(repo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{Repo: repo}
}

// Metricas arma el tablero para el rango pedido; sin rango, los últimos 30 días.
func (s *DashboardService) Metricas(desde, hasta string) (*entities.MetricasResponse, error) {
	if hasta == "" {
		hasta = time.Now().Format("2006-01-02")
	}
	if desde == "" {
		desde = time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	}

	porEstado, err := s.Repo.TurnosPorEstado(desde, hasta)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, n := range porEstado {
		total += n
	}

	ingresos, err := s.Repo.IngresosEstimados(desde, hasta)
	if err != nil {
		return nil, err
	}

	porDia, err := s.Repo.TurnosPorDia(desde, hasta)
	if err != nil {
		return nil, err
	}

	top, err := s.Repo.ServiciosTop(desde, hasta, serviciosTopLimite)
	if err != nil {
		return nil, err
	}

	return &entities.MetricasResponse{
		Desde:             desde,
		Hasta:             hasta,
		TotalTurnos:       total,
		TurnosPorEstado:   porEstado,
		IngresosEstimados: ingresos,
		TurnosPorDia:      porDia,
		ServiciosTop:      top,
	}, nil
}
