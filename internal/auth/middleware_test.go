package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protegido(t *testing.T) http.Handler {
	t.Helper()
	return Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte(identity.Correo))
	}))
}

func TestMiddlewareSinHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	protegido(t).ServeHTTP(rec, httptest.NewRequest("GET", "/api/Turnos", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareConTokenInvalido(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	req := httptest.NewRequest("GET", "/api/Turnos", nil)
	req.Header.Set("Authorization", "Bearer no-es-un-token")
	rec := httptest.NewRecorder()
	protegido(t).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareDejaLaIdentidadEnElContexto(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	token, err := MintToken(testSecret, "ana@salon.com", "Administrador", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/Turnos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protegido(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ana@salon.com", rec.Body.String())
}

func TestRequireRolRechazaOtroRol(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	token, err := MintToken(testSecret, "cliente@mail.com", "Cliente", time.Hour)
	require.NoError(t, err)

	handler := Middleware(RequireRol("Administrador")(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) },
	)))

	req := httptest.NewRequest("DELETE", "/api/Servicio/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
