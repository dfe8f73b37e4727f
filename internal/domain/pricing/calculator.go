// Package pricing implementa la tarifación de líneas de orden (servicio de dominio puro).
//
//	subtotal  = cantidad * precio
//	impuesto  = subtotal * (tasa / 100)
//	descuento = subtotal * (porcentaje / 100)
//	total     = subtotal + impuesto - descuento
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ordenes-api/internal/domain"
)

// CurrencyPlaces decimales de los montos persistidos a nivel de orden y factura.
const CurrencyPlaces = 2

var hundred = decimal.NewFromInt(100)

// LineAmounts montos de una línea tarifada, sin redondear.
type LineAmounts struct {
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	LineTotal      decimal.Decimal
}

// CalculateLine tarifa una línea. No tiene efectos secundarios.
func CalculateLine(unitPrice decimal.Decimal, quantity int, taxRatePercent, discountPercent decimal.Decimal) (LineAmounts, error) {
	if quantity <= 0 {
		return LineAmounts{}, domain.ErrInvalidQuantity
	}
	if err := ValidateDiscount(discountPercent); err != nil {
		return LineAmounts{}, err
	}
	if unitPrice.IsNegative() {
		return LineAmounts{}, domain.NewValidation("precio", "no puede ser negativo")
	}
	if taxRatePercent.IsNegative() || taxRatePercent.GreaterThan(hundred) {
		return LineAmounts{}, domain.NewValidation("impuesto", "debe estar entre 0 y 100")
	}

	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	tax := subtotal.Mul(taxRatePercent).Div(hundred)
	discount := subtotal.Mul(discountPercent).Div(hundred)
	return LineAmounts{
		Subtotal:       subtotal,
		TaxAmount:      tax,
		DiscountAmount: discount,
		LineTotal:      subtotal.Add(tax).Sub(discount),
	}, nil
}

// ValidateDiscount verifica que el porcentaje esté en [0, 100].
func ValidateDiscount(discountPercent decimal.Decimal) error {
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		return domain.ErrInvalidDiscount
	}
	return nil
}

// RoundCurrency redondea a 2 decimales (mitad alejándose de cero).
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// Totals acumulado de varias líneas.
type Totals struct {
	Gross    decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Net      decimal.Decimal
}

// Add acumula los montos de una línea.
func (t Totals) Add(l LineAmounts) Totals {
	return Totals{
		Gross:    t.Gross.Add(l.Subtotal),
		Tax:      t.Tax.Add(l.TaxAmount),
		Discount: t.Discount.Add(l.DiscountAmount),
		Net:      t.Net.Add(l.LineTotal),
	}
}

// Rounded devuelve los totales a 2 decimales. Net es el redondeo de la suma exacta (igual al
// total de la orden) y Discount se deriva para que Net = Gross + Tax - Discount se cumpla exacto.
func (t Totals) Rounded() Totals {
	gross := RoundCurrency(t.Gross)
	tax := RoundCurrency(t.Tax)
	net := RoundCurrency(t.Net)
	return Totals{
		Gross:    gross,
		Tax:      tax,
		Discount: gross.Add(tax).Sub(net),
		Net:      net,
	}
}

// Sum acumula una lista de líneas.
func Sum(lines []LineAmounts) Totals {
	var t Totals
	for _, l := range lines {
		t = t.Add(l)
	}
	return t
}
