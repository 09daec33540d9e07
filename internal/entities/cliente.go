package entities

type RegistrarClienteRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Apellido string `json:"apellido" validate:"required"`
	Telefono string `json:"telefono" validate:"required,e164|numeric"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type ClienteResponse struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Apellido    string `json:"apellido"`
	Telefono    string `json:"telefono"`
	Email       string `json:"email"`
	TieneCuenta bool   `json:"tieneCuenta"`
}
