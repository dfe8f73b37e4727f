package dto

import "time"

// CreateStoreRequest body para POST /api/stores.
type CreateStoreRequest struct {
	Name      string `json:"nombre" validate:"required,min=1,max=150"`
	Address   string `json:"direccion" validate:"omitempty,max=255"`
	Email     string `json:"correo" validate:"omitempty,email"`
	LegalInfo string `json:"informacion_legal" validate:"omitempty,max=1000"`
}

// UpdateStoreRequest actualización parcial de una tienda.
type UpdateStoreRequest struct {
	Name      *string `json:"nombre" validate:"omitempty,min=1,max=150"`
	Address   *string `json:"direccion" validate:"omitempty,max=255"`
	Email     *string `json:"correo" validate:"omitempty,email"`
	LegalInfo *string `json:"informacion_legal" validate:"omitempty,max=1000"`
}

// StoreResponse tienda en respuestas.
type StoreResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	Address   string    `json:"direccion,omitempty"`
	Email     string    `json:"correo,omitempty"`
	LegalInfo string    `json:"informacion_legal,omitempty"`
	CreatedAt time.Time `json:"fecha_creacion"`
}
