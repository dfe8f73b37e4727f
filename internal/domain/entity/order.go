package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados por defecto de una orden. Es una etiqueta descriptiva, sin máquina de estados.
const (
	OrderStatusPending    = "pendiente"
	OrderStatusProcessing = "procesando"
)

// Order representa la cabecera de una orden. Total es derivado de sus líneas.
type Order struct {
	ID        int64
	ClientID  int64
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
	Lines     []*OrderLine
}
