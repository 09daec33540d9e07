package service

import (
	"errors"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"salabelleza/internal/auth"
	"salabelleza/internal/repository"
)

const (
	RolAdministrador = "Administrador"
	RolEmpleada      = "Empleada"
	RolCliente       = "Cliente"
)

type AuthService interface {
	Login(correo, contrasena string) (string, error)
	Registrar(correo, contrasena, rol string) error
}

type authService struct {
	repo repository.UsuarioRepository
}

func NewAuthService(repo repository.UsuarioRepository) AuthService {
	return &authService{repo: repo}
}

func (s *authService) Login(correo, contrasena string) (string, error) {
	usuario, err := s.repo.GetByCorreo(correo)
	if err != nil {
		return "", err
	}
	if usuario == nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ContrasenaHash), []byte(contrasena)); err != nil {
		return "", errors.New("invalid credentials")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	return auth.MintToken(secret, usuario.Correo, usuario.Rol, 12*time.Hour)
}

func (s *authService) Registrar(correo, contrasena, rol string) error {
	if correo == "" || contrasena == "" {
		return errors.New("correo y contraseña no pueden estar vacíos")
	}
	if rol == "" {
		rol = RolCliente
	}
	existente, err := s.repo.GetByCorreo(correo)
	if err != nil {
		return err
	}
	if existente != nil {
		return errors.New("el correo ya está registrado")
	}
	return s.repo.Create(correo, contrasena, rol)
}
