package entities

type TurnosPorDia struct {
	Fecha  string `json:"fecha"`
	Turnos int    `json:"turnos"`
}

type ServicioTop struct {
	ServicioID int    `json:"servicioId"`
	Nombre     string `json:"nombre"`
	Turnos     int    `json:"turnos"`
}

type MetricasResponse struct {
	Desde             string         `json:"desde"`
	Hasta             string         `json:"hasta"`
	TotalTurnos       int            `json:"totalTurnos"`
	TurnosPorEstado   map[string]int `json:"turnosPorEstado"`
	IngresosEstimados float64        `json:"ingresosEstimados"`
	TurnosPorDia      []TurnosPorDia `json:"turnosPorDia"`
	ServiciosTop      []ServicioTop  `json:"serviciosTop"`
}
