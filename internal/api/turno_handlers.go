package api

import (
	"net/http"
	"strconv"

	"salabelleza/internal/entities"
	"salabelleza/internal/service"
)

type TurnoHandler struct {
	Turnos         *service.TurnoService
	Disponibilidad *service.DisponibilidadService
}

func NewTurnoHandler(turnos *service.TurnoService, disponibilidad *service.DisponibilidadService) *TurnoHandler {
	return &TurnoHandler{Turnos: turnos, Disponibilidad: disponibilidad}
}

// HorariosDisponibles responde los bloques libres para la fecha pedida.
// Sirve a los dos flujos del asistente: con empleadaId fija o en cero para
// ver qué profesionales quedan libres en cada bloque.
func (h *TurnoHandler) HorariosDisponibles(w http.ResponseWriter, r *http.Request) {
	var req entities.DisponibilidadRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Disponibilidad.HorariosDisponibles(req)
	if err != nil {
		http.Error(w, "Error checking availability", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *TurnoHandler) CreateTurno(w http.ResponseWriter, r *http.Request) {
	var req entities.TurnoRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Turnos.CrearTurno(req)
	if err != nil {
		respondError(w, err, "Could not create turno", http.StatusConflict)
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

func (h *TurnoHandler) GetTurno(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	resp, err := h.Turnos.GetTurno(id)
	if err != nil {
		http.Error(w, "Turno not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *TurnoHandler) ListTurnos(w http.ResponseWriter, r *http.Request) {
	fecha := r.URL.Query().Get("fecha")
	estado := r.URL.Query().Get("estado")
	sucursalID, _ := strconv.Atoi(r.URL.Query().Get("sucursalId"))

	turnos, err := h.Turnos.ListTurnos(fecha, sucursalID, estado)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, turnos)
}

func (h *TurnoHandler) CambiarEstado(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req EstadoRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Turnos.CambiarEstado(id, req.Estado); err != nil {
		respondError(w, err, "Could not update turno", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Turno actualizado"})
}

func (h *TurnoHandler) DeleteTurno(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Turnos.DeleteTurno(id); err != nil {
		http.Error(w, "Could not delete turno", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Turno eliminado"})
}
