package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordenes-api/internal/application/billing"
	"github.com/jhoicas/ordenes-api/internal/application/ordering"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

func TestIssueInvoice_TotalesDesdeLineas(t *testing.T) {
	f := newFixture(t)
	inv, err := f.aggregator.IssueInvoice(context.Background(), f.input())
	require.NoError(t, err)

	// bruto 59.98 + 30.00; impuestos 4.7984 + 5.70; descuentos 3.00
	assert.Equal(t, "89.98", inv.GrossTotal.StringFixed(2))
	assert.Equal(t, "10.50", inv.TaxTotal.StringFixed(2))
	assert.Equal(t, "3.00", inv.DiscountTotal.StringFixed(2))
	assert.True(t, inv.NetTotal.Equal(inv.GrossTotal.Add(inv.TaxTotal).Sub(inv.DiscountTotal)))
	assert.Equal(t, "97.48", inv.NetTotal.StringFixed(2))
	assert.True(t, inv.NetTotal.Equal(f.order.Total), "neto %s, orden %s", inv.NetTotal, f.order.Total)

	assert.Equal(t, f.client.ID, inv.ClientID, "el cliente se copia de la orden")
	assert.Equal(t, entity.InvoiceStatusIssued, inv.Status)
	assert.False(t, inv.IssuedAt.IsZero())
}

func TestIssueInvoice_NetoCoincideConOrdenEnRedondeoLimite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := &entity.Product{Name: "Chicle", Price: dec("0.10"), TaxRate: dec("6"), Stock: 5}
	require.NoError(t, f.store.Products().Create(ctx, p))
	order, err := ordering.NewOrderManager(f.store, f.store.Orders(), logger.Nop()).
		CreateOrder(ctx, f.client.ID, "", []ordering.LineInput{{ProductID: p.ID, Quantity: 1, DiscountPercent: dec("4")}})
	require.NoError(t, err)

	in := f.input()
	in.OrderID = order.ID
	inv, err := f.aggregator.IssueInvoice(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, "0.10", order.Total.StringFixed(2))
	assert.True(t, inv.NetTotal.Equal(order.Total), "neto %s, orden %s", inv.NetTotal, order.Total)
	assert.True(t, inv.NetTotal.Equal(inv.GrossTotal.Add(inv.TaxTotal).Sub(inv.DiscountTotal)))
}

func TestIssueInvoice_BrutoEsSumaDeSubtotales(t *testing.T) {
	f := newFixture(t)
	inv, err := f.aggregator.IssueInvoice(context.Background(), f.input())
	require.NoError(t, err)

	lines, err := f.store.Orders().ListLines(context.Background(), f.order.ID)
	require.NoError(t, err)
	var gross = dec("0")
	for _, l := range lines {
		gross = gross.Add(l.Subtotal)
	}
	assert.True(t, inv.GrossTotal.Equal(gross))
}

func TestIssueInvoice_ReferenciasInexistentes(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(in *billing.IssueInvoiceInput)
		entity string
	}{
		{"orden", func(in *billing.IssueInvoiceInput) { in.OrderID = 404 }, domain.EntityOrder},
		{"usuario", func(in *billing.IssueInvoiceInput) { in.UserID = 404 }, domain.EntityUser},
		{"tienda", func(in *billing.IssueInvoiceInput) { in.StoreID = 404 }, domain.EntityStore},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			in := f.input()
			tc.mutate(&in)

			_, err := f.aggregator.IssueInvoice(context.Background(), in)
			var nf *domain.NotFoundError
			require.True(t, errors.As(err, &nf), "error: %v", err)
			assert.Equal(t, tc.entity, nf.Entity)
			assert.Equal(t, int64(404), nf.ID)

			list, err := f.aggregator.ListInvoices(context.Background(), 10, 0)
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestIssueInvoice_EntradaInvalida(t *testing.T) {
	f := newFixture(t)
	_, err := f.aggregator.IssueInvoice(context.Background(), billing.IssueInvoiceInput{OrderID: f.order.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIssueInvoice_TotalesInconsistentes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	corrupt := *f.order
	corrupt.Total = corrupt.Total.Add(dec("5"))
	require.NoError(t, f.store.Orders().Update(ctx, &corrupt))

	_, err := f.aggregator.IssueInvoice(ctx, f.input())
	assert.ErrorIs(t, err, domain.ErrInconsistentTotals)

	n, err := f.store.Invoices().CountByOrder(ctx, f.order.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIssueInvoice_PermiteReemision(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first, err := f.aggregator.IssueInvoice(ctx, f.input())
	require.NoError(t, err)
	second, err := f.aggregator.IssueInvoice(ctx, f.input())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUpdateInvoice_RecalculaYConservaEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := f.input()
	in.Status = entity.InvoiceStatusPending
	inv, err := f.aggregator.IssueInvoice(ctx, in)
	require.NoError(t, err)

	upd := f.input()
	upd.PaymentMethod = "tarjeta"
	got, err := f.aggregator.UpdateInvoice(ctx, inv.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPending, got.Status)
	assert.Equal(t, "tarjeta", got.PaymentMethod)
	assert.True(t, got.NetTotal.Equal(inv.NetTotal))
	assert.Equal(t, inv.IssuedAt, got.IssuedAt)
}

func TestUpdateInvoice_Inexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.aggregator.UpdateInvoice(context.Background(), 99, f.input())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteInvoice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv, err := f.aggregator.IssueInvoice(ctx, f.input())
	require.NoError(t, err)

	require.NoError(t, f.aggregator.DeleteInvoice(ctx, inv.ID))
	_, err = f.aggregator.GetInvoice(ctx, inv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.aggregator.DeleteInvoice(ctx, inv.ID), domain.ErrNotFound)
}
