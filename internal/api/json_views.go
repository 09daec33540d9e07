package api

import "salabelleza/internal/db"

// Vistas JSON de las filas del catálogo; los structs de internal/db no
// llevan tags para no acoplar la base al contrato HTTP.

func sucursalesToJSON(sucursales []db.Sucursal) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(sucursales))
	for _, s := range sucursales {
		out = append(out, sucursalToJSON(s))
	}
	return out
}

func sucursalToJSON(s db.Sucursal) map[string]interface{} {
	return map[string]interface{}{
		"id":        s.ID,
		"nombre":    s.Nombre,
		"direccion": s.Direccion,
	}
}

func empleadasToJSON(empleadas []db.Empleada) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(empleadas))
	for _, e := range empleadas {
		out = append(out, empleadaToJSON(e))
	}
	return out
}

func empleadaToJSON(e db.Empleada) map[string]interface{} {
	return map[string]interface{}{
		"id":         e.ID,
		"nombre":     e.Nombre,
		"apellido":   e.Apellido,
		"correo":     e.Correo,
		"telefono":   e.Telefono,
		"sucursalId": e.SucursalID,
	}
}

func periodosToJSON(periodos []db.PeriodoTrabajo) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(periodos))
	for _, p := range periodos {
		out = append(out, map[string]interface{}{
			"id":         p.ID,
			"empleadaId": p.EmpleadaID,
			"diaSemana":  p.DiaSemana,
			"horaInicio": p.HoraInicio,
			"horaFin":    p.HoraFin,
		})
	}
	return out
}

func licenciasToJSON(licencias []db.Licencia) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(licencias))
	for _, l := range licencias {
		out = append(out, map[string]interface{}{
			"id":          l.ID,
			"empleadaId":  l.EmpleadaID,
			"fechaInicio": l.FechaInicio.Format("2006-01-02"),
			"fechaFin":    l.FechaFin.Format("2006-01-02"),
			"motivo":      l.Motivo,
		})
	}
	return out
}
