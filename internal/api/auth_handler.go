package api

import (
	"net/http"
	"os"
	"strings"

	"salabelleza/internal/auth"
	"salabelleza/internal/service"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	// La identidad de la respuesta se deriva del token recién emitido, el
	// mismo decode que hace el middleware después.
	identity, err := auth.DecodeIdentity(token)
	if err != nil {
		http.Error(w, "Could not decode token", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Token:       token,
		Correo:      identity.Correo,
		TipoUsuario: identity.TipoUsuario,
	})
}

func (h *AuthHandler) Registrar(w http.ResponseWriter, r *http.Request) {
	var req RegistrarRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Cualquiera puede registrarse como cliente; crear cuentas con rol
	// elevado exige un token de administrador.
	if req.Rol != "" && req.Rol != service.RolCliente && !esAdmin(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.service.Registrar(req.Email, req.Password, req.Rol); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "Usuario registrado"})
}

func esAdmin(r *http.Request) bool {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return false
	}
	identity, err := auth.VerifyToken(os.Getenv("JWT_SECRET"), strings.TrimPrefix(header, "Bearer "))
	return err == nil && identity.TipoUsuario == service.RolAdministrador
}
