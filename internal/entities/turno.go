package entities

import "time"

type TurnoDetalleRequest struct {
	ServicioID int `json:"servicioId" validate:"required,gt=0"`
}

type TurnoRequest struct {
	FechaHora  string                `json:"fechaHora" validate:"required"`
	EmpleadaID int                   `json:"empleadaId" validate:"required,gt=0"`
	ClienteID  int                   `json:"clienteId" validate:"required,gt=0"`
	SucursalID int                   `json:"sucursalId"`
	Detalles   []TurnoDetalleRequest `json:"detalles" validate:"required,min=1,dive"`
}

type TurnoDetalleResponse struct {
	ServicioID      int     `json:"servicioId"`
	Nombre          string  `json:"nombre"`
	DuracionMinutos int     `json:"duracionMinutos"`
	Precio          float64 `json:"precio"`
}

type TurnoResponse struct {
	ID              int                    `json:"id"`
	FechaHora       time.Time              `json:"fechaHora"`
	EmpleadaID      int                    `json:"empleadaId"`
	EmpleadaNombre  string                 `json:"empleadaNombre"`
	ClienteID       int                    `json:"clienteId"`
	ClienteNombre   string                 `json:"clienteNombre"`
	ClienteTelefono string                 `json:"clienteTelefono"`
	ClienteEmail    string                 `json:"clienteEmail"`
	SucursalID      int                    `json:"sucursalId"`
	Estado          string                 `json:"estado"`
	Detalles        []TurnoDetalleResponse `json:"detalles"`
	CreadoEn        time.Time              `json:"creadoEn"`
	ActualizadoEn   time.Time              `json:"actualizadoEn"`
}

type TurnosList struct {
	Total  int             `json:"total"`
	Turnos []TurnoResponse `json:"turnos"`
}
