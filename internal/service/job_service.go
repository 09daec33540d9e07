package service

import (
	"fmt"
	"log"
	"time"

	"salabelleza/internal/booking"
	"salabelleza/internal/repository"
)

type JobService struct {
	Repo   *repository.JobRepository
	Drafts *booking.Store
}

func NewJobService(repo *repository.JobRepository, drafts *booking.Store) *JobService {
	return &JobService{Repo: repo, Drafts: drafts}
}

// UpdateFinishedTurnos busca turnos confirmados cuyo horario ya pasó y los
// marca como finalizados.
func (s *JobService) UpdateFinishedTurnos() error {
	log.Println("Cron Job: Checking for turnos to mark as 'finalizado'...")

	turnoIDs, err := s.Repo.GetTurnosConfirmadosVencidos()
	if err != nil {
		return fmt.Errorf("cron job: failed to get confirmed turnos past end time: %w", err)
	}

	if len(turnoIDs) == 0 {
		log.Println("Cron Job: No confirmed turnos found past their end time.")
		return nil
	}

	log.Printf("Cron Job: Found %d turnos to mark as 'finalizado'. IDs: %v", len(turnoIDs), turnoIDs)

	if err := s.Repo.UpdateEstados(turnoIDs, EstadoFinalizado); err != nil {
		return fmt.Errorf("cron job: failed to update turno estados: %w", err)
	}

	log.Printf("Cron Job: Successfully updated %d turnos to 'finalizado'.", len(turnoIDs))
	return nil
}

// SweepDrafts descarta los borradores de reserva sin actividad.
func (s *JobService) SweepDrafts(maxAge time.Duration) {
	if n := s.Drafts.SweepInactive(maxAge); n > 0 {
		log.Printf("Cron Job: Swept %d inactive reservation drafts.", n)
	}
}
