package repository

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"salabelleza/internal/db"
)

type UsuarioRepository interface {
	GetByCorreo(correo string) (*db.Usuario, error)
	Create(correo, contrasena, rol string) error
}

type usuarioRepository struct {
	db *sql.DB
}

func NewUsuarioRepository(database *sql.DB) UsuarioRepository {
	return &usuarioRepository{db: database}
}

func (r *usuarioRepository) GetByCorreo(correo string) (*db.Usuario, error) {
	var u db.Usuario
	err := r.db.QueryRow("SELECT id, correo, contrasena_hash, rol FROM usuarios WHERE correo = $1", correo).
		Scan(&u.ID, &u.Correo, &u.ContrasenaHash, &u.Rol)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepository) Create(correo, contrasena, rol string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	query := "INSERT INTO usuarios (correo, contrasena_hash, rol) VALUES ($1, $2, $3)"
	_, err = r.db.Exec(query, correo, hash, rol)
	return err
}
