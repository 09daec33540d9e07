package auth

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "clave-de-prueba"

func TestMintYVerifyToken(t *testing.T) {
	token, err := MintToken(testSecret, "ana@salon.com", "Administrador", time.Hour)
	require.NoError(t, err)

	identity, err := VerifyToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "ana@salon.com", identity.Correo)
	assert.Equal(t, "Administrador", identity.TipoUsuario)
}

func TestVerifyTokenRechazaFirmaAjena(t *testing.T) {
	token, err := MintToken("otro-secreto", "ana@salon.com", "Cliente", time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	assert.Error(t, err)
}

func TestVerifyTokenRechazaExpirado(t *testing.T) {
	token, err := MintToken(testSecret, "ana@salon.com", "Cliente", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	assert.Error(t, err)
}

// fakeToken arma un token sin firmar con el payload dado, suficiente para
// ejercitar DecodeIdentity.
func fakeToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".firma"
}

func TestDecodeIdentityConClaimsCortos(t *testing.T) {
	token := fakeToken(t, map[string]interface{}{
		"email": "ana@salon.com",
		"role":  "Empleada",
	})

	identity, err := DecodeIdentity(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@salon.com", identity.Correo)
	assert.Equal(t, "Empleada", identity.TipoUsuario)
}

func TestDecodeIdentityConClaimsDeASPNET(t *testing.T) {
	token := fakeToken(t, map[string]interface{}{
		"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress": "ana@salon.com",
		"http://schemas.microsoft.com/ws/2008/06/identity/claims/role":       "Administrador",
	})

	identity, err := DecodeIdentity(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@salon.com", identity.Correo)
	assert.Equal(t, "Administrador", identity.TipoUsuario)
}

func TestDecodeIdentityPrefiereLaClaveCorta(t *testing.T) {
	token := fakeToken(t, map[string]interface{}{
		"role": "Cliente",
		"http://schemas.microsoft.com/ws/2008/06/identity/claims/role": "Administrador",
		"email": "ana@salon.com",
	})

	identity, err := DecodeIdentity(token)
	require.NoError(t, err)
	assert.Equal(t, "Cliente", identity.TipoUsuario)
}

func TestDecodeIdentityMalformadoDevuelveError(t *testing.T) {
	casos := []string{
		"",
		"un-solo-segmento",
		"dos.segmentos",
		"a.b.c.d",
		"cabecera.%%%no-base64%%%.firma",
		fakeToken(t, map[string]interface{}{"role": "Cliente"}), // sin email
	}
	for _, token := range casos {
		_, err := DecodeIdentity(token)
		assert.Error(t, err, "token %q", token)
	}

	// Payload que no es JSON
	noJSON := "h." + base64.RawURLEncoding.EncodeToString([]byte("no soy json")) + ".f"
	_, err := DecodeIdentity(noJSON)
	assert.Error(t, err)
}
