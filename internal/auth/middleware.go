package auth

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
)

type contextKey string

const identityKey contextKey = "identity"

// IdentityFromContext devuelve la identidad que dejó el middleware, si hay.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok
}

// Middleware valida el bearer token y deja la identidad en el contexto.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		secret := os.Getenv("JWT_SECRET")
		identity, err := VerifyToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Printf("Token rechazado: %v", err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRol exige que la identidad del contexto tenga el rol dado.
// Se monta después de Middleware.
func RequireRol(rol string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok || identity.TipoUsuario != rol {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
