package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordenes-api/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculateLine_ProductoConImpuesto(t *testing.T) {
	got, err := CalculateLine(dec("29.99"), 2, dec("8"), decimal.Zero)
	require.NoError(t, err)

	assert.True(t, got.Subtotal.Equal(dec("59.98")), "subtotal: %s", got.Subtotal)
	assert.True(t, got.TaxAmount.Equal(dec("4.7984")), "impuesto: %s", got.TaxAmount)
	assert.True(t, got.DiscountAmount.IsZero())
	assert.True(t, got.LineTotal.Equal(dec("64.7784")), "total: %s", got.LineTotal)
	assert.Equal(t, "64.78", RoundCurrency(got.LineTotal).StringFixed(2))
}

func TestCalculateLine_ConDescuento(t *testing.T) {
	got, err := CalculateLine(dec("10.00"), 3, dec("19"), dec("10"))
	require.NoError(t, err)

	assert.True(t, got.Subtotal.Equal(dec("30")))
	assert.True(t, got.TaxAmount.Equal(dec("5.7")))
	assert.True(t, got.DiscountAmount.Equal(dec("3")))
	assert.True(t, got.LineTotal.Equal(dec("32.7")))
}

func TestCalculateLine_Errores(t *testing.T) {
	cases := []struct {
		name     string
		qty      int
		tax      string
		discount string
		want     error
	}{
		{"cantidad cero", 0, "8", "0", domain.ErrInvalidQuantity},
		{"cantidad negativa", -1, "8", "0", domain.ErrInvalidQuantity},
		{"descuento mayor a 100", 1, "8", "150", domain.ErrInvalidDiscount},
		{"descuento negativo", 1, "8", "-1", domain.ErrInvalidDiscount},
		{"impuesto fuera de rango", 1, "101", "0", domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateLine(dec("5"), tc.qty, dec(tc.tax), dec(tc.discount))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "error inesperado: %v", err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), "todos son errores de validación")
		})
	}
}

func TestCalculateLine_DescuentoEnLimites(t *testing.T) {
	full, err := CalculateLine(dec("7.50"), 2, decimal.Zero, dec("100"))
	require.NoError(t, err)
	assert.True(t, full.LineTotal.IsZero())

	none, err := CalculateLine(dec("7.50"), 2, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, none.LineTotal.Equal(dec("15")))
}

// Sumar muchas líneas con decimales no acumula error binario.
func TestTotals_SinDerivaDeRedondeo(t *testing.T) {
	var totals Totals
	for i := 0; i < 1000; i++ {
		l, err := CalculateLine(dec("0.10"), 1, decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		totals = totals.Add(l)
	}
	assert.Equal(t, "100.00", totals.Net.StringFixed(2))
	assert.True(t, totals.Net.Equal(dec("100")))
}

func TestTotals_RoundedMantieneIdentidad(t *testing.T) {
	var totals Totals
	for _, p := range []string{"29.99", "13.33", "0.07"} {
		l, err := CalculateLine(dec(p), 3, dec("8"), dec("12.5"))
		require.NoError(t, err)
		totals = totals.Add(l)
	}
	r := totals.Rounded()
	assert.True(t, r.Net.Equal(r.Gross.Add(r.Tax).Sub(r.Discount)))
	assert.True(t, r.Net.Equal(RoundCurrency(totals.Net)))
}

func TestTotals_RoundedNetoIgualAlTotalDeLaOrden(t *testing.T) {
	// 0.10 con 6% de impuesto y 4% de descuento: neto exacto 0.1020.
	l, err := CalculateLine(dec("0.10"), 1, dec("6"), dec("4"))
	require.NoError(t, err)
	r := Sum([]LineAmounts{l}).Rounded()

	assert.Equal(t, "0.10", r.Net.StringFixed(2))
	assert.Equal(t, "0.10", r.Gross.StringFixed(2))
	assert.Equal(t, "0.01", r.Tax.StringFixed(2))
	assert.Equal(t, "0.01", r.Discount.StringFixed(2))
	assert.True(t, r.Net.Equal(r.Gross.Add(r.Tax).Sub(r.Discount)))
	assert.False(t, r.Discount.IsNegative())
}
