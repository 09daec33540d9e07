package api

import (
	"net/http"
	"time"

	"salabelleza/internal/db"
	"salabelleza/internal/repository"
	"salabelleza/internal/utils"
)

type EmpleadaHandler struct {
	Empleadas *repository.EmpleadaRepository
}

func NewEmpleadaHandler(empleadas *repository.EmpleadaRepository) *EmpleadaHandler {
	return &EmpleadaHandler{Empleadas: empleadas}
}

func (h *EmpleadaHandler) CreateEmpleada(w http.ResponseWriter, r *http.Request) {
	var req EmpleadaRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	e := db.Empleada{Nombre: req.Nombre, Apellido: req.Apellido, Correo: req.Correo, Telefono: req.Telefono, SucursalID: req.SucursalID}
	if err := h.Empleadas.CreateEmpleada(&e); err != nil {
		http.Error(w, "Could not create empleada", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, empleadaToJSON(e))
}

func (h *EmpleadaHandler) UpdateEmpleada(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req EmpleadaRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	e := db.Empleada{ID: id, Nombre: req.Nombre, Apellido: req.Apellido, Correo: req.Correo, Telefono: req.Telefono, SucursalID: req.SucursalID}
	if err := h.Empleadas.UpdateEmpleada(&e); err != nil {
		http.Error(w, "Could not update empleada", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Empleada actualizada"})
}

func (h *EmpleadaHandler) DeleteEmpleada(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Empleadas.DeleteEmpleada(id); err != nil {
		http.Error(w, "Could not delete empleada", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Empleada eliminada"})
}

func (h *EmpleadaHandler) AsignarHabilidad(w http.ResponseWriter, r *http.Request) {
	id, okID := pathID(r, "id")
	habilidadID, okSub := pathID(r, "habilidadId")
	if !okID || !okSub {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Empleadas.AsignarHabilidad(id, habilidadID); err != nil {
		http.Error(w, "Could not assign habilidad", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Habilidad asignada"})
}

func (h *EmpleadaHandler) DesasignarHabilidad(w http.ResponseWriter, r *http.Request) {
	id, okID := pathID(r, "id")
	habilidadID, okSub := pathID(r, "habilidadId")
	if !okID || !okSub {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Empleadas.DesasignarHabilidad(id, habilidadID); err != nil {
		http.Error(w, "Could not unassign habilidad", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Habilidad desasignada"})
}

func (h *EmpleadaHandler) AsignarSector(w http.ResponseWriter, r *http.Request) {
	id, okID := pathID(r, "id")
	sectorID, okSub := pathID(r, "sectorId")
	if !okID || !okSub {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Empleadas.AsignarSector(id, sectorID); err != nil {
		http.Error(w, "Could not assign sector", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Sector asignado"})
}

func (h *EmpleadaHandler) DesasignarSector(w http.ResponseWriter, r *http.Request) {
	id, okID := pathID(r, "id")
	sectorID, okSub := pathID(r, "sectorId")
	if !okID || !okSub {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Empleadas.DesasignarSector(id, sectorID); err != nil {
		http.Error(w, "Could not unassign sector", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Sector desasignado"})
}

// ----- Períodos de trabajo -----

func (h *EmpleadaHandler) ListPeriodos(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	periodos, err := h.Empleadas.ListPeriodos(id)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, periodosToJSON(periodos))
}

func (h *EmpleadaHandler) CreatePeriodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req PeriodoRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	inicio, errInicio := utils.ParseHoraMin(req.HoraInicio)
	fin, errFin := utils.ParseHoraMin(req.HoraFin)
	if errInicio != nil || errFin != nil || fin <= inicio {
		http.Error(w, "horaFin must be after horaInicio", http.StatusBadRequest)
		return
	}
	p := db.PeriodoTrabajo{EmpleadaID: id, DiaSemana: req.DiaSemana, HoraInicio: req.HoraInicio, HoraFin: req.HoraFin}
	if err := h.Empleadas.CreatePeriodo(&p); err != nil {
		http.Error(w, "Could not create periodo", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":         p.ID,
		"empleadaId": p.EmpleadaID,
		"diaSemana":  p.DiaSemana,
		"horaInicio": p.HoraInicio,
		"horaFin":    p.HoraFin,
	})
}

func (h *EmpleadaHandler) DeletePeriodo(w http.ResponseWriter, r *http.Request) {
	id, okID := pathID(r, "id")
	periodoID, okSub := pathID(r, "periodoId")
	if !okID || !okSub {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Empleadas.DeletePeriodo(id, periodoID); err != nil {
		http.Error(w, "Could not delete periodo", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Período eliminado"})
}

// ----- Licencias -----

func (h *EmpleadaHandler) ListLicencias(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	licencias, err := h.Empleadas.ListLicencias(id)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, licenciasToJSON(licencias))
}

func (h *EmpleadaHandler) CreateLicencia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req LicenciaRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	inicio, _ := time.Parse("2006-01-02", req.FechaInicio)
	fin, _ := time.Parse("2006-01-02", req.FechaFin)
	if fin.Before(inicio) {
		http.Error(w, "fechaFin must not be before fechaInicio", http.StatusBadRequest)
		return
	}
	l := db.Licencia{EmpleadaID: id, FechaInicio: inicio, FechaFin: fin, Motivo: req.Motivo}
	if err := h.Empleadas.CreateLicencia(&l); err != nil {
		http.Error(w, "Could not create licencia", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":          l.ID,
		"empleadaId":  l.EmpleadaID,
		"fechaInicio": req.FechaInicio,
		"fechaFin":    req.FechaFin,
		"motivo":      l.Motivo,
	})
}

func (h *EmpleadaHandler) DeleteLicencia(w http.ResponseWriter, r *http.Request) {
	id, okID := pathID(r, "id")
	licenciaID, okSub := pathID(r, "licenciaId")
	if !okID || !okSub {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Empleadas.DeleteLicencia(id, licenciaID); err != nil {
		http.Error(w, "Could not delete licencia", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Licencia eliminada"})
}
