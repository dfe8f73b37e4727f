package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Impuesto es la tasa en porcentaje.
type CreateProductRequest struct {
	Name        string          `json:"nombre" validate:"required,min=1,max=200"`
	Description string          `json:"descripcion" validate:"max=1000"`
	Category    string          `json:"categoria" validate:"max=100"`
	Price       decimal.Decimal `json:"precio"`
	TaxRate     decimal.Decimal `json:"impuesto"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	Name        *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"descripcion" validate:"omitempty,max=1000"`
	Category    *string          `json:"categoria" validate:"omitempty,max=100"`
	Price       *decimal.Decimal `json:"precio"`
	TaxRate     *decimal.Decimal `json:"impuesto"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Category    string          `json:"categoria"`
	Price       decimal.Decimal `json:"precio"`
	TaxRate     decimal.Decimal `json:"impuesto"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
