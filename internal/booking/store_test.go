package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreNewYGet(t *testing.T) {
	s := NewStore()
	id, draft := s.New()
	require.NotEmpty(t, id)
	require.NotNil(t, draft)

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Same(t, draft, got)

	_, ok = s.Get("no-existe")
	assert.False(t, ok)
}

func TestStoreResetConservaLaSesion(t *testing.T) {
	s := NewStore()
	id, draft := s.New()
	draft.SetHorario("2025-06-10T10:00:00")

	require.True(t, s.Reset(id))
	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Empty(t, got.FechaHora())

	assert.False(t, s.Reset("no-existe"))
}

func TestSweepInactiveDescartaSoloLasViejas(t *testing.T) {
	s := NewStore()
	ahora := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	s.ahora = func() time.Time { return ahora }

	vieja, _ := s.New()
	activa, _ := s.New()

	// La sesión activa registra uso 25 minutos después.
	ahora = ahora.Add(25 * time.Minute)
	_, ok := s.Get(activa)
	require.True(t, ok)

	ahora = ahora.Add(10 * time.Minute)
	n := s.SweepInactive(30 * time.Minute)

	assert.Equal(t, 1, n)
	assert.Equal(t, 1, s.Len())
	_, ok = s.Get(vieja)
	assert.False(t, ok)
	_, ok = s.Get(activa)
	assert.True(t, ok)
}

func TestStoreDelete(t *testing.T) {
	s := NewStore()
	id, _ := s.New()
	s.Delete(id)
	_, ok := s.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}
