package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salabelleza/internal/auth"
)

type stubAuthService struct {
	token string
	err   error
}

func (s *stubAuthService) Login(correo, contrasena string) (string, error) {
	return s.token, s.err
}

func (s *stubAuthService) Registrar(correo, contrasena, rol string) error {
	return nil
}

func TestLoginDerivaLaIdentidadDelToken(t *testing.T) {
	token, err := auth.MintToken("clave-de-prueba", "ana@salon.com", "Administrador", time.Hour)
	require.NoError(t, err)

	h := NewAuthHandler(&stubAuthService{token: token})

	body, _ := json.Marshal(LoginRequest{Email: "ana@salon.com", Password: "secreta"})
	req := httptest.NewRequest("POST", "/api/Usuario/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, token, resp.Token)
	assert.Equal(t, "ana@salon.com", resp.Correo)
	assert.Equal(t, "Administrador", resp.TipoUsuario)
}

func TestLoginConCredencialesInvalidas(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: assert.AnError})

	body, _ := json.Marshal(LoginRequest{Email: "ana@salon.com", Password: "mala"})
	req := httptest.NewRequest("POST", "/api/Usuario/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegistrarConRolElevadoSinTokenDeAdmin(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	body, _ := json.Marshal(RegistrarRequest{Email: "nueva@salon.com", Password: "secreta", Rol: "Administrador"})
	req := httptest.NewRequest("POST", "/api/Usuario/Registrar", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Registrar(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
