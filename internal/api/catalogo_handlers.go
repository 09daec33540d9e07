package api

import (
	"net/http"
	"strconv"
	"strings"

	"salabelleza/internal/db"
	"salabelleza/internal/repository"
)

// CatalogoHandler sirve las lecturas públicas que alimentan cada paso del
// asistente de reserva.
type CatalogoHandler struct {
	Catalogo  *repository.CatalogoRepository
	Servicios *repository.ServicioRepository
	Empleadas *repository.EmpleadaRepository
}

func NewCatalogoHandler(catalogo *repository.CatalogoRepository, servicios *repository.ServicioRepository, empleadas *repository.EmpleadaRepository) *CatalogoHandler {
	return &CatalogoHandler{Catalogo: catalogo, Servicios: servicios, Empleadas: empleadas}
}

func (h *CatalogoHandler) ListSucursales(w http.ResponseWriter, r *http.Request) {
	sucursales, err := h.Catalogo.ListSucursales()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, sucursalesToJSON(sucursales))
}

func (h *CatalogoHandler) ListServicios(w http.ResponseWriter, r *http.Request) {
	servicios, err := h.Servicios.ListServicios()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	out := make([]map[string]interface{}, 0, len(servicios))
	for _, s := range servicios {
		extras, err := h.Servicios.ListExtras(s.ID)
		if err != nil {
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}
		extrasOut := make([]map[string]interface{}, 0, len(extras))
		for _, e := range extras {
			extrasOut = append(extrasOut, map[string]interface{}{
				"id":              e.ID,
				"nombre":          e.Nombre,
				"duracionMinutos": e.DuracionMinutos,
				"precio":          e.Precio,
			})
		}
		out = append(out, map[string]interface{}{
			"id":              s.ID,
			"nombre":          s.Nombre,
			"duracionMinutos": s.DuracionMinutos,
			"precio":          s.Precio,
			"sectorId":        s.SectorID,
			"extras":          extrasOut,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *CatalogoHandler) ListSectores(w http.ResponseWriter, r *http.Request) {
	sectores, err := h.Catalogo.ListSectores()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	out := make([]map[string]interface{}, 0, len(sectores))
	for _, s := range sectores {
		out = append(out, map[string]interface{}{"id": s.ID, "nombre": s.Nombre})
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *CatalogoHandler) ListHabilidades(w http.ResponseWriter, r *http.Request) {
	habilidades, err := h.Catalogo.ListHabilidades()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	out := make([]map[string]interface{}, 0, len(habilidades))
	for _, hab := range habilidades {
		out = append(out, map[string]interface{}{"id": hab.ID, "nombre": hab.Nombre})
	}
	respondJSON(w, http.StatusOK, out)
}

// ListEmpleadas lista profesionales, opcionalmente filtradas por sucursal y
// por los servicios que tienen que poder hacer (habilidades requeridas).
func (h *CatalogoHandler) ListEmpleadas(w http.ResponseWriter, r *http.Request) {
	sucursalID, _ := strconv.Atoi(r.URL.Query().Get("sucursalId"))
	servicioIDs := parseIDList(r.URL.Query().Get("servicioIds"))

	var err error
	var empleadas []db.Empleada
	if len(servicioIDs) > 0 {
		if sucursalID == 0 {
			http.Error(w, "sucursalId is required when filtering by servicioIds", http.StatusBadRequest)
			return
		}
		empleadas, err = h.Empleadas.EmpleadasCalificadas(sucursalID, servicioIDs)
	} else {
		empleadas, err = h.Empleadas.ListEmpleadas(sucursalID)
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, empleadasToJSON(empleadas))
}

func parseIDList(raw string) []int {
	if raw == "" {
		return nil
	}
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
