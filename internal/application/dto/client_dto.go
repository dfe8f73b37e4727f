package dto

import "time"

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	FirstName string `json:"nombre" validate:"required,min=1,max=100"`
	LastName  string `json:"apellido" validate:"required,min=1,max=100"`
	Email     string `json:"correo" validate:"required,email"`
	Phone     string `json:"telefono" validate:"omitempty,max=30"`
	Address   string `json:"direccion" validate:"omitempty,max=255"`
	Status    string `json:"estado" validate:"omitempty,oneof=activo inactivo"`
}

// UpdateClientRequest actualización parcial de un cliente.
type UpdateClientRequest struct {
	FirstName *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"apellido" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"correo" validate:"omitempty,email"`
	Phone     *string `json:"telefono" validate:"omitempty,max=30"`
	Address   *string `json:"direccion" validate:"omitempty,max=255"`
	Status    *string `json:"estado" validate:"omitempty,oneof=activo inactivo"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"nombre"`
	LastName  string    `json:"apellido"`
	Email     string    `json:"correo"`
	Phone     string    `json:"telefono,omitempty"`
	Address   string    `json:"direccion,omitempty"`
	Status    string    `json:"estado"`
	CreatedAt time.Time `json:"fecha_creacion"`
}
