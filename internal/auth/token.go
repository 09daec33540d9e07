package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claves bajo las que puede venir el rol. El backend anterior (ASP.NET)
// emitía el claim con la URI larga; los tokens nuevos usan "role". Se
// prueban en orden: shim de compatibilidad, no acceso dinámico.
var roleClaimKeys = []string{
	"role",
	"http://schemas.microsoft.com/ws/2008/06/identity/claims/role",
}

var emailClaimKeys = []string{
	"email",
	"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress",
}

// Identity es la identidad derivada de un token.
type Identity struct {
	Correo      string `json:"correo"`
	TipoUsuario string `json:"tipoUsuario"`
}

// MintToken firma un JWT HS256 con los claims de correo y rol.
func MintToken(secret, correo, rol string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email": correo,
		"role":  rol,
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken valida firma y expiración y devuelve la identidad.
func VerifyToken(secret, tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return identityFromClaims(claims)
}

// DecodeIdentity decodifica el payload del token (segmento del medio,
// base64) sin validar firma ni expiración. Es el mismo derive que hacía el
// cliente: un payload malformado equivale a sesión cerrada, nunca a un panic.
func DecodeIdentity(tokenString string) (*Identity, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("token must have three segments")
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("decoding token payload: %w", err)
	}
	var claims map[string]interface{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("parsing token payload: %w", err)
	}
	return identityFromClaims(claims)
}

func identityFromClaims(claims map[string]interface{}) (*Identity, error) {
	correo := firstStringClaim(claims, emailClaimKeys)
	rol := firstStringClaim(claims, roleClaimKeys)
	if correo == "" {
		return nil, fmt.Errorf("token has no email claim")
	}
	return &Identity{Correo: correo, TipoUsuario: rol}, nil
}

func firstStringClaim(claims map[string]interface{}, keys []string) string {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
