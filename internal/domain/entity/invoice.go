package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura.
const (
	InvoiceStatusIssued    = "emitida"
	InvoiceStatusPending   = "pendiente"
	InvoiceStatusCancelled = "cancelada"
)

// Invoice representa una factura derivada de las líneas de una orden.
// ClientID se copia de la orden; NetTotal = GrossTotal + TaxTotal - DiscountTotal.
type Invoice struct {
	ID            int64
	OrderID       int64
	ClientID      int64
	UserID        int64
	StoreID       int64
	GrossTotal    decimal.Decimal
	TaxTotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	NetTotal      decimal.Decimal
	Status        string
	PaymentMethod string
	Notes         string
	IssuedAt      time.Time
}
