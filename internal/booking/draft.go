package booking

import (
	"fmt"
	"sync"
)

// Paso representa el paso del asistente de reserva en el que se encuentra
// un borrador, derivado siempre de los campos presentes.
type Paso int

const (
	PasoSucursal Paso = iota
	PasoServicios
	// PasoEleccion admite dos flujos: elegir primero horario o primero
	// profesional. Ambos órdenes son válidos.
	PasoEleccion
	PasoHorario
	PasoEmpleada
	PasoConfirmacion
)

func (p Paso) String() string {
	switch p {
	case PasoSucursal:
		return "sucursal"
	case PasoServicios:
		return "servicios"
	case PasoEleccion:
		return "eleccion"
	case PasoHorario:
		return "horario"
	case PasoEmpleada:
		return "empleada"
	case PasoConfirmacion:
		return "confirmacion"
	}
	return "desconocido"
}

type Sucursal struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
}

type Servicio struct {
	ID              int     `json:"id"`
	Nombre          string  `json:"nombre"`
	DuracionMinutos int     `json:"duracionMinutos"`
	Precio          float64 `json:"precio"`
}

type Extra struct {
	ID              int     `json:"id"`
	Nombre          string  `json:"nombre"`
	DuracionMinutos int     `json:"duracionMinutos"`
	Precio          float64 `json:"precio"`
}

// SeleccionServicio es un servicio elegido junto con sus extras opcionales.
type SeleccionServicio struct {
	Servicio Servicio `json:"servicio"`
	Extras   []Extra  `json:"extras,omitempty"`
}

type Empleada struct {
	ID       int    `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// ClienteSinCuenta son los datos de un cliente sin cuenta registrada,
// capturados recién en el paso de confirmación.
type ClienteSinCuenta struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
}

// Draft es la reserva en curso: un agregado mutable que cada paso del
// asistente completa de a poco y que se envía entero al confirmar.
// Varios requests de la misma sesión comparten el puntero, así que todas
// las operaciones toman el lock interno.
// El orden de las selecciones de servicios se conserva para mostrarlas,
// no tiene significado de negocio.
type Draft struct {
	mu sync.Mutex

	sucursal    *Sucursal
	fechaHora   string
	empleada    *Empleada
	cliente     *ClienteSinCuenta
	selecciones []SeleccionServicio
}

func NewDraft() *Draft {
	return &Draft{}
}

func (d *Draft) SetSucursal(s Sucursal) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sucursal = &s
}

// AddServicio agrega la selección si el servicio no está presente todavía.
// Agregar un servicio ya elegido no hace nada.
func (d *Draft) AddServicio(sel SeleccionServicio) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, existente := range d.selecciones {
		if existente.Servicio.ID == sel.Servicio.ID {
			return
		}
	}
	d.selecciones = append(d.selecciones, sel)
}

// AddServicios agrega en bloque, filtrando los ya presentes y los
// repetidos dentro del mismo lote.
func (d *Draft) AddServicios(sels []SeleccionServicio) {
	d.mu.Lock()
	defer d.mu.Unlock()
	vistos := make(map[int]bool, len(d.selecciones))
	for _, existente := range d.selecciones {
		vistos[existente.Servicio.ID] = true
	}
	for _, sel := range sels {
		if vistos[sel.Servicio.ID] {
			continue
		}
		vistos[sel.Servicio.ID] = true
		d.selecciones = append(d.selecciones, sel)
	}
}

// RemoveServicio saca la selección por ID de servicio. Si no está, no pasa nada.
func (d *Draft) RemoveServicio(servicioID int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	filtradas := d.selecciones[:0]
	for _, sel := range d.selecciones {
		if sel.Servicio.ID != servicioID {
			filtradas = append(filtradas, sel)
		}
	}
	d.selecciones = filtradas
}

func (d *Draft) SetHorario(fechaHora string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fechaHora = fechaHora
}

func (d *Draft) SetEmpleada(e Empleada) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.empleada = &e
}

func (d *Draft) SetClienteSinCuenta(c ClienteSinCuenta) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cliente = &c
}

// Reset vuelve todos los campos a su valor inicial. Se invoca al entrar al
// paso de sucursal para que nunca queden datos de una reserva anterior.
func (d *Draft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sucursal = nil
	d.fechaHora = ""
	d.empleada = nil
	d.cliente = nil
	d.selecciones = nil
}

// Sucursal devuelve una copia de la sucursal elegida, o nil.
func (d *Draft) Sucursal() *Sucursal {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sucursal == nil {
		return nil
	}
	s := *d.sucursal
	return &s
}

func (d *Draft) FechaHora() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fechaHora
}

func (d *Draft) Empleada() *Empleada {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.empleada == nil {
		return nil
	}
	e := *d.empleada
	return &e
}

func (d *Draft) Cliente() *ClienteSinCuenta {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cliente == nil {
		return nil
	}
	c := *d.cliente
	return &c
}

// Selecciones devuelve una copia de las selecciones en orden de inserción.
func (d *Draft) Selecciones() []SeleccionServicio {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]SeleccionServicio, len(d.selecciones))
	copy(out, d.selecciones)
	return out
}

// Servicios es la vista derivada: siempre se recalcula a partir de las
// selecciones, nunca se guarda aparte.
func (d *Draft) Servicios() []Servicio {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Servicio, 0, len(d.selecciones))
	for _, sel := range d.selecciones {
		out = append(out, sel.Servicio)
	}
	return out
}

// DuracionTotalMinutos suma la duración de servicios y extras elegidos.
func (d *Draft) DuracionTotalMinutos() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	total := 0
	for _, sel := range d.selecciones {
		total += sel.Servicio.DuracionMinutos
		for _, ex := range sel.Extras {
			total += ex.DuracionMinutos
		}
	}
	return total
}

// PrecioTotal suma el precio de servicios y extras elegidos.
func (d *Draft) PrecioTotal() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	total := 0.0
	for _, sel := range d.selecciones {
		total += sel.Servicio.Precio
		for _, ex := range sel.Extras {
			total += ex.Precio
		}
	}
	return total
}

// Paso deriva el paso actual del estado del borrador.
func (d *Draft) Paso() Paso {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch {
	case d.sucursal == nil:
		return PasoSucursal
	case len(d.selecciones) == 0:
		return PasoServicios
	case d.fechaHora == "" && d.empleada == nil:
		return PasoEleccion
	case d.fechaHora == "":
		return PasoHorario
	case d.empleada == nil:
		return PasoEmpleada
	}
	return PasoConfirmacion
}

// ListoParaConfirmar devuelve nil solo cuando sucursal, al menos un servicio,
// horario y profesional están todos presentes. El error nombra el primer
// campo faltante para que el llamador pueda redirigir al paso correcto.
func (d *Draft) ListoParaConfirmar() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sucursal == nil {
		return fmt.Errorf("falta elegir sucursal")
	}
	if len(d.selecciones) == 0 {
		return fmt.Errorf("falta elegir al menos un servicio")
	}
	if d.fechaHora == "" {
		return fmt.Errorf("falta elegir horario")
	}
	if d.empleada == nil {
		return fmt.Errorf("falta elegir profesional")
	}
	return nil
}
