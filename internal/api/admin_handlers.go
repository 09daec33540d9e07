package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"salabelleza/internal/db"
	"salabelleza/internal/repository"
)

// AdminHandler cubre el alta, baja y modificación del catálogo desde el
// back office, incluyendo los toggles de asignación.
type AdminHandler struct {
	Catalogo  *repository.CatalogoRepository
	Servicios *repository.ServicioRepository
}

func NewAdminHandler(catalogo *repository.CatalogoRepository, servicios *repository.ServicioRepository) *AdminHandler {
	return &AdminHandler{Catalogo: catalogo, Servicios: servicios}
}

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	return id, err == nil && id > 0
}

// ----- Sucursales -----

func (h *AdminHandler) CreateSucursal(w http.ResponseWriter, r *http.Request) {
	var req SucursalRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	s := db.Sucursal{Nombre: req.Nombre, Direccion: req.Direccion}
	if err := h.Catalogo.CreateSucursal(&s); err != nil {
		http.Error(w, "Could not create sucursal", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, sucursalToJSON(s))
}

func (h *AdminHandler) UpdateSucursal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req SucursalRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	s := db.Sucursal{ID: id, Nombre: req.Nombre, Direccion: req.Direccion}
	if err := h.Catalogo.UpdateSucursal(&s); err != nil {
		http.Error(w, "Could not update sucursal", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Sucursal actualizada"})
}

func (h *AdminHandler) DeleteSucursal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Catalogo.DeleteSucursal(id); err != nil {
		http.Error(w, "Could not delete sucursal", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Sucursal eliminada"})
}

func (h *AdminHandler) AsignarSectorASucursal(w http.ResponseWriter, r *http.Request) {
	id, okID := pathID(r, "id")
	sectorID, okSub := pathID(r, "sectorId")
	if !okID || !okSub {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Catalogo.AsignarSector(id, sectorID); err != nil {
		http.Error(w, "Could not assign sector", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Sector asignado"})
}

func (h *AdminHandler) DesasignarSectorDeSucursal(w http.ResponseWriter, r *http.Request) {
	id, okID := pathID(r, "id")
	sectorID, okSub := pathID(r, "sectorId")
	if !okID || !okSub {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Catalogo.DesasignarSector(id, sectorID); err != nil {
		http.Error(w, "Could not unassign sector", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Sector desasignado"})
}

// ----- Sectores -----

func (h *AdminHandler) CreateSector(w http.ResponseWriter, r *http.Request) {
	var req SectorRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	s := db.Sector{Nombre: req.Nombre}
	if err := h.Catalogo.CreateSector(&s); err != nil {
		http.Error(w, "Could not create sector", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"id": s.ID, "nombre": s.Nombre})
}

func (h *AdminHandler) UpdateSector(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req SectorRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Catalogo.UpdateSector(&db.Sector{ID: id, Nombre: req.Nombre}); err != nil {
		http.Error(w, "Could not update sector", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Sector actualizado"})
}

func (h *AdminHandler) DeleteSector(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Catalogo.DeleteSector(id); err != nil {
		http.Error(w, "Could not delete sector", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Sector eliminado"})
}

// ----- Habilidades -----

func (h *AdminHandler) CreateHabilidad(w http.ResponseWriter, r *http.Request) {
	var req HabilidadRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	hab := db.Habilidad{Nombre: req.Nombre}
	if err := h.Catalogo.CreateHabilidad(&hab); err != nil {
		http.Error(w, "Could not create habilidad", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"id": hab.ID, "nombre": hab.Nombre})
}

func (h *AdminHandler) UpdateHabilidad(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req HabilidadRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Catalogo.UpdateHabilidad(&db.Habilidad{ID: id, Nombre: req.Nombre}); err != nil {
		http.Error(w, "Could not update habilidad", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Habilidad actualizada"})
}

func (h *AdminHandler) DeleteHabilidad(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Catalogo.DeleteHabilidad(id); err != nil {
		http.Error(w, "Could not delete habilidad", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Habilidad eliminada"})
}

// ----- Servicios -----

func (h *AdminHandler) CreateServicio(w http.ResponseWriter, r *http.Request) {
	var req ServicioRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	s := db.Servicio{Nombre: req.Nombre, DuracionMinutos: req.DuracionMinutos, Precio: req.Precio, SectorID: req.SectorID}
	if err := h.Servicios.CreateServicio(&s); err != nil {
		http.Error(w, "Could not create servicio", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":              s.ID,
		"nombre":          s.Nombre,
		"duracionMinutos": s.DuracionMinutos,
		"precio":          s.Precio,
		"sectorId":        s.SectorID,
	})
}

func (h *AdminHandler) UpdateServicio(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req ServicioRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	s := db.Servicio{ID: id, Nombre: req.Nombre, DuracionMinutos: req.DuracionMinutos, Precio: req.Precio, SectorID: req.SectorID}
	if err := h.Servicios.UpdateServicio(&s); err != nil {
		http.Error(w, "Could not update servicio", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Servicio actualizado"})
}

func (h *AdminHandler) DeleteServicio(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Servicios.DeleteServicio(id); err != nil {
		http.Error(w, "Could not delete servicio", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Servicio eliminado"})
}

func (h *AdminHandler) CreateExtra(w http.ResponseWriter, r *http.Request) {
	servicioID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req ExtraRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request", http.StatusBadRequest)
		return
	}
	e := db.Extra{ServicioID: servicioID, Nombre: req.Nombre, DuracionMinutos: req.DuracionMinutos, Precio: req.Precio}
	if err := h.Servicios.CreateExtra(&e); err != nil {
		http.Error(w, "Could not create extra", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":              e.ID,
		"servicioId":      e.ServicioID,
		"nombre":          e.Nombre,
		"duracionMinutos": e.DuracionMinutos,
		"precio":          e.Precio,
	})
}

func (h *AdminHandler) DeleteExtra(w http.ResponseWriter, r *http.Request) {
	extraID, ok := pathID(r, "extraId")
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Servicios.DeleteExtra(extraID); err != nil {
		http.Error(w, "Could not delete extra", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Extra eliminado"})
}

func (h *AdminHandler) AsignarHabilidadAServicio(w http.ResponseWriter, r *http.Request) {
	id, okID := pathID(r, "id")
	habilidadID, okSub := pathID(r, "habilidadId")
	if !okID || !okSub {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Servicios.AsignarHabilidad(id, habilidadID); err != nil {
		http.Error(w, "Could not assign habilidad", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Habilidad asignada"})
}

func (h *AdminHandler) DesasignarHabilidadDeServicio(w http.ResponseWriter, r *http.Request) {
	id, okID := pathID(r, "id")
	habilidadID, okSub := pathID(r, "habilidadId")
	if !okID || !okSub {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Servicios.DesasignarHabilidad(id, habilidadID); err != nil {
		http.Error(w, "Could not unassign habilidad", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Habilidad desasignada"})
}
