package service

import (
	"fmt"
	"log"
	"time"

	"salabelleza/internal/booking"
	"salabelleza/internal/db"
	"salabelleza/internal/entities"
	"salabelleza/internal/errors"
	"salabelleza/internal/repository"
	"salabelleza/internal/utils"
)

const (
	EstadoConfirmado = "confirmado"
	EstadoFinalizado = "finalizado"
	EstadoCancelado  = "cancelado"
)

var estadosValidos = map[string]bool{
	EstadoConfirmado: true,
	EstadoFinalizado: true,
	EstadoCancelado:  true,
}

type TurnoService struct {
	Turnos   repository.TurnoRepository
	Clientes repository.ClienteRepository
	sender   *SenderService
}

func NewTurnoService(turnos repository.TurnoRepository, clientes repository.ClienteRepository, sender *SenderService) *TurnoService {
	return &TurnoService{Turnos: turnos, Clientes: clientes, sender: sender}
}

// CrearTurno registra el turno confirmado y dispara las notificaciones.
func (s *TurnoService) CrearTurno(req entities.TurnoRequest) (*entities.TurnoResponse, error) {
	fechaHora, err := utils.ParseFechaHora(req.FechaHora)
	if err != nil {
		return nil, errors.ErrBadRequest(err.Error())
	}

	ahora := time.Now().UTC()
	turno := &db.Turno{
		FechaHora:     fechaHora,
		EmpleadaID:    req.EmpleadaID,
		ClienteID:     req.ClienteID,
		SucursalID:    req.SucursalID,
		Estado:        EstadoConfirmado,
		CreadoEn:      ahora,
		ActualizadoEn: ahora,
	}

	servicioIDs := make([]int, 0, len(req.Detalles))
	for _, d := range req.Detalles {
		servicioIDs = append(servicioIDs, d.ServicioID)
	}

	if err := s.Turnos.Create(turno, servicioIDs); err != nil {
		log.Printf("Error creando turno: %v", err)
		return nil, err
	}

	resp, err := s.Turnos.GetByID(turno.ID)
	if err != nil {
		return nil, err
	}
	s.notificar(resp, EstadoConfirmado)
	return resp, nil
}

// ConfirmarDraft arma el TurnoRequest a partir del borrador completo,
// resolviendo el cliente sin cuenta si hace falta, y lo registra.
func (s *TurnoService) ConfirmarDraft(draft *booking.Draft) (*entities.TurnoResponse, error) {
	if err := draft.ListoParaConfirmar(); err != nil {
		return nil, errors.ErrUnprocessable(err.Error())
	}

	clienteID := 0
	if datos := draft.Cliente(); datos != nil {
		cliente, err := s.BuscarOCrearCliente(entities.RegistrarClienteRequest{
			Nombre:   datos.Nombre,
			Apellido: datos.Apellido,
			Telefono: datos.Telefono,
			Email:    datos.Email,
		})
		if err != nil {
			return nil, err
		}
		clienteID = cliente.ID
	}
	if clienteID == 0 {
		return nil, errors.ErrUnprocessable("falta el cliente de la reserva")
	}

	req := entities.TurnoRequest{
		FechaHora:  draft.FechaHora(),
		EmpleadaID: draft.Empleada().ID,
		ClienteID:  clienteID,
		SucursalID: draft.Sucursal().ID,
	}
	for _, servicio := range draft.Servicios() {
		req.Detalles = append(req.Detalles, entities.TurnoDetalleRequest{ServicioID: servicio.ID})
	}

	resp, err := s.CrearTurno(req)
	if err != nil {
		return nil, err
	}
	draft.Reset()
	return resp, nil
}

// BuscarOCrearCliente busca por teléfono y recién crea el registro sin
// cuenta cuando no existe.
func (s *TurnoService) BuscarOCrearCliente(req entities.RegistrarClienteRequest) (*db.Cliente, error) {
	cliente, err := s.Clientes.GetByTelefono(req.Telefono)
	if err != nil {
		return nil, err
	}
	if cliente != nil {
		return cliente, nil
	}
	return s.Clientes.CreateSinCuenta(req.Nombre, req.Apellido, req.Telefono, req.Email)
}

func (s *TurnoService) GetTurno(id int) (*entities.TurnoResponse, error) {
	return s.Turnos.GetByID(id)
}

func (s *TurnoService) ListTurnos(fecha string, sucursalID int, estado string) (*entities.TurnosList, error) {
	turnos, err := s.Turnos.List(fecha, sucursalID, estado)
	if err != nil {
		return nil, err
	}
	return &entities.TurnosList{Total: len(turnos), Turnos: turnos}, nil
}

func (s *TurnoService) CambiarEstado(id int, estado string) error {
	if !estadosValidos[estado] {
		return errors.ErrBadRequest(fmt.Sprintf("estado inválido %q", estado))
	}
	turno, err := s.Turnos.GetByID(id)
	if err != nil {
		return errors.ErrNotFound(err.Error())
	}
	if err := s.Turnos.UpdateEstado(id, estado); err != nil {
		return err
	}
	if estado == EstadoCancelado {
		turno.Estado = estado
		s.notificar(turno, estado)
	}
	return nil
}

func (s *TurnoService) DeleteTurno(id int) error {
	return s.Turnos.Delete(id)
}

func (s *TurnoService) notificar(turno *entities.TurnoResponse, estado string) {
	if s.sender == nil {
		return
	}
	s.sender.SendTurnoEmail(*turno, estado)
	s.sender.SendTurnoSMS(*turno, estado)
}
