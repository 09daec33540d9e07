package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type entrada struct {
	draft     *Draft
	ultimoUso time.Time
}

// Store guarda los borradores en memoria por sesión. No hay persistencia:
// un borrador vive solo mientras dura la sesión de reserva.
type Store struct {
	mu    sync.Mutex
	m     map[string]*entrada
	ahora func() time.Time
}

func NewStore() *Store {
	return &Store{m: make(map[string]*entrada), ahora: time.Now}
}

// New crea un borrador vacío y devuelve su ID de sesión.
func (s *Store) New() (string, *Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	d := NewDraft()
	s.m[id] = &entrada{draft: d, ultimoUso: s.ahora()}
	return id, d
}

// Get devuelve el borrador de la sesión y marca la sesión como activa.
func (s *Store) Get(id string) (*Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[id]
	if !ok {
		return nil, false
	}
	e.ultimoUso = s.ahora()
	return e.draft, true
}

// Reset limpia el borrador de la sesión sin descartarla.
func (s *Store) Reset(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[id]
	if !ok {
		return false
	}
	e.draft.Reset()
	e.ultimoUso = s.ahora()
	return true
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
}

// SweepInactive descarta las sesiones sin actividad por más de maxAge y
// devuelve cuántas sacó. Lo invoca el scheduler para que el mapa no crezca
// sin límite.
func (s *Store) SweepInactive(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	limite := s.ahora().Add(-maxAge)
	n := 0
	for id, e := range s.m {
		if e.ultimoUso.Before(limite) {
			delete(s.m, id)
			n++
		}
	}
	return n
}

// Len devuelve la cantidad de sesiones vivas.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}
