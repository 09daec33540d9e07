package db

import "time"

type Usuario struct {
	ID             int
	Correo         string
	ContrasenaHash string
	Rol            string
	CreadoEn       time.Time
}

type Sucursal struct {
	ID        int
	Nombre    string
	Direccion string
}

type Sector struct {
	ID     int
	Nombre string
}

type Habilidad struct {
	ID     int
	Nombre string
}

type Servicio struct {
	ID              int
	Nombre          string
	DuracionMinutos int
	Precio          float64
	SectorID        *int
}

type Extra struct {
	ID              int
	ServicioID      int
	Nombre          string
	DuracionMinutos int
	Precio          float64
}

type Empleada struct {
	ID         int
	Nombre     string
	Apellido   string
	Correo     string
	Telefono   string
	SucursalID int
}

// PeriodoTrabajo es el horario semanal recurrente de una empleada.
// DiaSemana usa 0=domingo .. 6=sábado; las horas van como "HH:MM".
type PeriodoTrabajo struct {
	ID         int
	EmpleadaID int
	DiaSemana  int
	HoraInicio string
	HoraFin    string
}

type Licencia struct {
	ID          int
	EmpleadaID  int
	FechaInicio time.Time
	FechaFin    time.Time
	Motivo      string
}

type Cliente struct {
	ID          int
	Nombre      string
	Apellido    string
	Telefono    string
	Email       string
	TieneCuenta bool
}

type Turno struct {
	ID            int
	FechaHora     time.Time
	EmpleadaID    int
	ClienteID     int
	SucursalID    int
	Estado        string
	CreadoEn      time.Time
	ActualizadoEn time.Time
}

type TurnoDetalle struct {
	ID         int
	TurnoID    int
	ServicioID int
}
