package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"salabelleza/internal/entities"
	"salabelleza/internal/repository"
)

type ClienteHandler struct {
	Clientes repository.ClienteRepository
}

func NewClienteHandler(clientes repository.ClienteRepository) *ClienteHandler {
	return &ClienteHandler{Clientes: clientes}
}

// GetByTelefono busca el cliente por teléfono. 404 significa que hay que
// registrarlo sin cuenta antes de confirmar la reserva.
func (h *ClienteHandler) GetByTelefono(w http.ResponseWriter, r *http.Request) {
	telefono := mux.Vars(r)["telefono"]
	cliente, err := h.Clientes.GetByTelefono(telefono)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if cliente == nil {
		http.Error(w, "Cliente not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, entities.ClienteResponse{
		ID:          cliente.ID,
		Nombre:      cliente.Nombre,
		Apellido:    cliente.Apellido,
		Telefono:    cliente.Telefono,
		Email:       cliente.Email,
		TieneCuenta: cliente.TieneCuenta,
	})
}

func (h *ClienteHandler) RegistrarSinCuenta(w http.ResponseWriter, r *http.Request) {
	var req entities.RegistrarClienteRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}

	existente, err := h.Clientes.GetByTelefono(req.Telefono)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if existente != nil {
		http.Error(w, "El teléfono ya está registrado", http.StatusConflict)
		return
	}

	cliente, err := h.Clientes.CreateSinCuenta(req.Nombre, req.Apellido, req.Telefono, req.Email)
	if err != nil {
		http.Error(w, "Could not create cliente", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, entities.ClienteResponse{
		ID:          cliente.ID,
		Nombre:      cliente.Nombre,
		Apellido:    cliente.Apellido,
		Telefono:    cliente.Telefono,
		Email:       cliente.Email,
		TieneCuenta: cliente.TieneCuenta,
	})
}
