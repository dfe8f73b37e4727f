package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Price y TaxRate se copian a la línea de orden al momento de tarifar; cambios posteriores no la afectan.
type Product struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal // precio unitario, 2 decimales
	TaxRate     decimal.Decimal // porcentaje de impuesto (0-100)
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
