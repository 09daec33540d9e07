package entities

// DisponibilidadRequest pide los horarios libres para una fecha. Con
// EmpleadaID en cero se consulta sobre todas las profesionales calificadas
// de la sucursal.
type DisponibilidadRequest struct {
	EmpleadaID  int    `json:"empleadaId"`
	Fecha       string `json:"fecha" validate:"required,datetime=2006-01-02"`
	ServicioIDs []int  `json:"servicioIds" validate:"required,min=1"`
	SucursalID  int    `json:"sucursalId" validate:"required,gt=0"`
}

// BloqueHorario es un inicio posible del turno, anotado con qué
// profesionales están libres en ese bloque.
type BloqueHorario struct {
	HoraInicio  string `json:"horaInicio"`
	HoraFin     string `json:"horaFin"`
	EmpleadaIDs []int  `json:"empleadaIds"`
}

type DisponibilidadResponse struct {
	Fecha           string          `json:"fecha"`
	DuracionMinutos int             `json:"duracionMinutos"`
	Bloques         []BloqueHorario `json:"bloques"`
}
