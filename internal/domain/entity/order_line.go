package entity

import "github.com/shopspring/decimal"

// OrderLine es una línea tarifada de una orden.
// UnitPrice y TaxRate son copia del producto al momento de tarifar.
type OrderLine struct {
	ID              int64
	OrderID         int64
	ProductID       int64
	Quantity        int
	UnitPrice       decimal.Decimal
	TaxRate         decimal.Decimal // porcentaje
	DiscountPercent decimal.Decimal // porcentaje
	Subtotal        decimal.Decimal // Quantity * UnitPrice
	TaxAmount       decimal.Decimal
	DiscountAmount  decimal.Decimal
	LineTotal       decimal.Decimal // Subtotal + TaxAmount - DiscountAmount
}
