package api

// Auth
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token       string `json:"token"`
	Correo      string `json:"correo"`
	TipoUsuario string `json:"tipoUsuario"`
}

type RegistrarRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Rol      string `json:"rol" validate:"omitempty,oneof=Cliente Empleada Administrador"`
}

// Catálogo
type SucursalRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Direccion string `json:"direccion" validate:"required"`
}

type SectorRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

type HabilidadRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

type ServicioRequest struct {
	Nombre          string  `json:"nombre" validate:"required"`
	DuracionMinutos int     `json:"duracionMinutos" validate:"required,gt=0"`
	Precio          float64 `json:"precio" validate:"gte=0"`
	SectorID        *int    `json:"sectorId"`
}

type ExtraRequest struct {
	Nombre          string  `json:"nombre" validate:"required"`
	DuracionMinutos int     `json:"duracionMinutos" validate:"gte=0"`
	Precio          float64 `json:"precio" validate:"gte=0"`
}

// Empleadas
type EmpleadaRequest struct {
	Nombre     string `json:"nombre" validate:"required"`
	Apellido   string `json:"apellido" validate:"required"`
	Correo     string `json:"correo" validate:"omitempty,email"`
	Telefono   string `json:"telefono" validate:"omitempty,e164|numeric"`
	SucursalID int    `json:"sucursalId" validate:"required,gt=0"`
}

type PeriodoRequest struct {
	DiaSemana  int    `json:"diaSemana" validate:"min=0,max=6"`
	HoraInicio string `json:"horaInicio" validate:"required,datetime=15:04"`
	HoraFin    string `json:"horaFin" validate:"required,datetime=15:04"`
}

type LicenciaRequest struct {
	FechaInicio string `json:"fechaInicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string `json:"fechaFin" validate:"required,datetime=2006-01-02"`
	Motivo      string `json:"motivo"`
}

// Turnos
type EstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=confirmado finalizado cancelado"`
}

// Asistente de reserva
type DraftSucursalRequest struct {
	SucursalID int `json:"sucursalId" validate:"required,gt=0"`
}

type DraftSeleccionRequest struct {
	ServicioID int   `json:"servicioId" validate:"required,gt=0"`
	ExtraIDs   []int `json:"extraIds"`
}

type DraftServiciosRequest struct {
	Selecciones []DraftSeleccionRequest `json:"selecciones" validate:"required,min=1,dive"`
}

type DraftHorarioRequest struct {
	FechaHora string `json:"fechaHora" validate:"required"`
}

type DraftEmpleadaRequest struct {
	EmpleadaID int `json:"empleadaId" validate:"required,gt=0"`
}

type DraftClienteRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Apellido string `json:"apellido" validate:"required"`
	Telefono string `json:"telefono" validate:"required,e164|numeric"`
	Email    string `json:"email" validate:"omitempty,email"`
}
