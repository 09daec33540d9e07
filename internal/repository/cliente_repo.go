package repository

import (
	"database/sql"
	"errors"

	"salabelleza/internal/db"
)

type ClienteRepository interface {
	GetByTelefono(telefono string) (*db.Cliente, error)
	CreateSinCuenta(nombre, apellido, telefono, email string) (*db.Cliente, error)
}

type clienteRepository struct {
	db *sql.DB
}

func NewClienteRepository(database *sql.DB) ClienteRepository {
	return &clienteRepository{db: database}
}

func (r *clienteRepository) GetByTelefono(telefono string) (*db.Cliente, error) {
	var c db.Cliente
	query := `SELECT id, nombre, apellido, telefono, COALESCE(email, ''), tiene_cuenta
	          FROM clientes WHERE telefono = $1`
	err := r.db.QueryRow(query, telefono).
		Scan(&c.ID, &c.Nombre, &c.Apellido, &c.Telefono, &c.Email, &c.TieneCuenta)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepository) CreateSinCuenta(nombre, apellido, telefono, email string) (*db.Cliente, error) {
	c := &db.Cliente{
		Nombre:      nombre,
		Apellido:    apellido,
		Telefono:    telefono,
		Email:       email,
		TieneCuenta: false,
	}
	query := `INSERT INTO clientes (nombre, apellido, telefono, email, tiene_cuenta)
	          VALUES ($1, $2, $3, $4, false) RETURNING id`
	err := r.db.QueryRow(query, nombre, apellido, telefono, email).Scan(&c.ID)
	if err != nil {
		return nil, err
	}
	return c, nil
}
