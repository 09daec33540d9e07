package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"salabelleza/internal/booking"
	"salabelleza/internal/repository"
	"salabelleza/internal/service"
)

// ReservaHandler es el asistente de reserva: cada paso muta el borrador en
// memoria de la sesión y la confirmación lo envía entero como turno.
type ReservaHandler struct {
	Drafts    *booking.Store
	Catalogo  *repository.CatalogoRepository
	Servicios *repository.ServicioRepository
	Empleadas *repository.EmpleadaRepository
	Turnos    *service.TurnoService
}

func NewReservaHandler(drafts *booking.Store, catalogo *repository.CatalogoRepository, servicios *repository.ServicioRepository, empleadas *repository.EmpleadaRepository, turnos *service.TurnoService) *ReservaHandler {
	return &ReservaHandler{Drafts: drafts, Catalogo: catalogo, Servicios: servicios, Empleadas: empleadas, Turnos: turnos}
}

// CreateReserva abre una sesión de reserva con el borrador vacío.
func (h *ReservaHandler) CreateReserva(w http.ResponseWriter, r *http.Request) {
	id, draft := h.Drafts.New()
	respondJSON(w, http.StatusCreated, draftToJSON(id, draft))
}

func (h *ReservaHandler) GetReserva(w http.ResponseWriter, r *http.Request) {
	id, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, draftToJSON(id, draft))
}

// ResetReserva limpia el borrador: es el equivalente a volver al paso de
// sucursal para arrancar de cero.
func (h *ReservaHandler) ResetReserva(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.Drafts.Reset(id) {
		http.Error(w, "Reserva not found", http.StatusNotFound)
		return
	}
	draft, _ := h.Drafts.Get(id)
	respondJSON(w, http.StatusOK, draftToJSON(id, draft))
}

func (h *ReservaHandler) SetSucursal(w http.ResponseWriter, r *http.Request) {
	id, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req DraftSucursalRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	sucursal, err := h.Catalogo.GetSucursal(req.SucursalID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if sucursal == nil {
		http.Error(w, "Sucursal not found", http.StatusNotFound)
		return
	}
	draft.SetSucursal(booking.Sucursal{ID: sucursal.ID, Nombre: sucursal.Nombre, Direccion: sucursal.Direccion})
	respondJSON(w, http.StatusOK, draftToJSON(id, draft))
}

// AddServicios agrega selecciones en bloque; los servicios ya elegidos se
// filtran sin error.
func (h *ReservaHandler) AddServicios(w http.ResponseWriter, r *http.Request) {
	id, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req DraftServiciosRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}

	var selecciones []booking.SeleccionServicio
	for _, sel := range req.Selecciones {
		servicios, err := h.Servicios.GetServiciosPorIDs([]int{sel.ServicioID})
		if err != nil {
			if errors.Is(err, repository.ErrServiciosFaltantes) {
				http.Error(w, "Servicio not found", http.StatusNotFound)
			} else {
				http.Error(w, "Database error", http.StatusInternalServerError)
			}
			return
		}
		servicio := servicios[0]

		var extras []booking.Extra
		if len(sel.ExtraIDs) > 0 {
			disponibles, err := h.Servicios.ListExtras(servicio.ID)
			if err != nil {
				http.Error(w, "Database error", http.StatusInternalServerError)
				return
			}
			porID := make(map[int]booking.Extra, len(disponibles))
			for _, e := range disponibles {
				porID[e.ID] = booking.Extra{ID: e.ID, Nombre: e.Nombre, DuracionMinutos: e.DuracionMinutos, Precio: e.Precio}
			}
			for _, extraID := range sel.ExtraIDs {
				extra, existe := porID[extraID]
				if !existe {
					http.Error(w, "Extra not found for servicio", http.StatusNotFound)
					return
				}
				extras = append(extras, extra)
			}
		}

		selecciones = append(selecciones, booking.SeleccionServicio{
			Servicio: booking.Servicio{
				ID:              servicio.ID,
				Nombre:          servicio.Nombre,
				DuracionMinutos: servicio.DuracionMinutos,
				Precio:          servicio.Precio,
			},
			Extras: extras,
		})
	}

	draft.AddServicios(selecciones)
	respondJSON(w, http.StatusOK, draftToJSON(id, draft))
}

func (h *ReservaHandler) RemoveServicio(w http.ResponseWriter, r *http.Request) {
	id, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	servicioID, okID := pathID(r, "servicioId")
	if !okID {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	draft.RemoveServicio(servicioID)
	respondJSON(w, http.StatusOK, draftToJSON(id, draft))
}

func (h *ReservaHandler) SetHorario(w http.ResponseWriter, r *http.Request) {
	id, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req DraftHorarioRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	draft.SetHorario(req.FechaHora)
	respondJSON(w, http.StatusOK, draftToJSON(id, draft))
}

func (h *ReservaHandler) SetEmpleada(w http.ResponseWriter, r *http.Request) {
	id, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req DraftEmpleadaRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	empleada, err := h.Empleadas.GetEmpleada(req.EmpleadaID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if empleada == nil {
		http.Error(w, "Empleada not found", http.StatusNotFound)
		return
	}
	draft.SetEmpleada(booking.Empleada{ID: empleada.ID, Nombre: empleada.Nombre, Apellido: empleada.Apellido})
	respondJSON(w, http.StatusOK, draftToJSON(id, draft))
}

func (h *ReservaHandler) SetCliente(w http.ResponseWriter, r *http.Request) {
	id, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	var req DraftClienteRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	draft.SetClienteSinCuenta(booking.ClienteSinCuenta{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Telefono: req.Telefono,
		Email:    req.Email,
	})
	respondJSON(w, http.StatusOK, draftToJSON(id, draft))
}

// ConfirmarReserva envía el agregado completo como turno. Si falta algún
// campo responde 422 con el primer faltante; tras confirmar, el borrador
// queda reseteado.
func (h *ReservaHandler) ConfirmarReserva(w http.ResponseWriter, r *http.Request) {
	_, draft, ok := h.draft(w, r)
	if !ok {
		return
	}
	resp, err := h.Turnos.ConfirmarDraft(draft)
	if err != nil {
		respondError(w, err, "Could not confirm reserva", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

func (h *ReservaHandler) draft(w http.ResponseWriter, r *http.Request) (string, *booking.Draft, bool) {
	id := mux.Vars(r)["id"]
	draft, ok := h.Drafts.Get(id)
	if !ok {
		http.Error(w, "Reserva not found", http.StatusNotFound)
		return "", nil, false
	}
	return id, draft, true
}

func draftToJSON(id string, d *booking.Draft) map[string]interface{} {
	return map[string]interface{}{
		"reservaId":            id,
		"paso":                 d.Paso().String(),
		"sucursal":             d.Sucursal(),
		"selecciones":          d.Selecciones(),
		"servicios":            d.Servicios(),
		"fechaHora":            d.FechaHora(),
		"empleada":             d.Empleada(),
		"cliente":              d.Cliente(),
		"duracionTotalMinutos": d.DuracionTotalMinutos(),
		"precioTotal":          d.PrecioTotal(),
	}
}
