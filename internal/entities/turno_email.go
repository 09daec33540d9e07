package entities

type TurnoEmailData struct {
	ClienteNombre      string
	EmpleadaNombre     string
	Servicios          []string
	FechaHoraFormatted string
	CurrentYear        int
	Estado             string
}
