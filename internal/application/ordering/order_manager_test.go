package ordering_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordenes-api/internal/application/ordering"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/pricing"
	"github.com/jhoicas/ordenes-api/internal/infrastructure/memory"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

type fixture struct {
	store   *memory.Store
	manager *ordering.OrderManager
	client  *entity.Client
	p1      *entity.Product // 29.99, 8%, stock 50
	p2      *entity.Product // 10.00, 19%, stock 5
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	st := memory.New()

	client := &entity.Client{FirstName: "Ana", LastName: "Gómez", Email: "ana@example.com", Status: entity.ClientStatusActive}
	require.NoError(t, st.Clients().Create(ctx, client))
	p1 := &entity.Product{Name: "Café", Price: dec("29.99"), TaxRate: dec("8"), Stock: 50}
	require.NoError(t, st.Products().Create(ctx, p1))
	p2 := &entity.Product{Name: "Taza", Price: dec("10.00"), TaxRate: dec("19"), Stock: 5}
	require.NoError(t, st.Products().Create(ctx, p2))

	return &fixture{
		store:   st,
		manager: ordering.NewOrderManager(st, st.Orders(), logger.Nop()),
		client:  client,
		p1:      p1,
		p2:      p2,
	}
}

func (f *fixture) countOrders(t *testing.T) int {
	t.Helper()
	list, err := f.store.Orders().List(context.Background(), 100, 0)
	require.NoError(t, err)
	return len(list)
}

// ─── CreateOrder ─────────────────────────────────────────────────────────────

func TestCreateOrder_UnaLinea(t *testing.T) {
	f := newFixture(t)
	order, err := f.manager.CreateOrder(context.Background(), f.client.ID, "", []ordering.LineInput{
		{ProductID: f.p1.ID, Quantity: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "64.78", order.Total.StringFixed(2))
	require.Len(t, order.Lines, 1)
	l := order.Lines[0]
	assert.True(t, l.Subtotal.Equal(dec("59.98")))
	assert.True(t, l.TaxAmount.Equal(dec("4.7984")))
	assert.True(t, l.DiscountAmount.IsZero())
	assert.True(t, l.LineTotal.Equal(dec("64.7784")))
	assert.True(t, l.UnitPrice.Equal(dec("29.99")), "precio copiado del producto")

	stored, err := f.manager.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.True(t, stored.Total.Equal(dec("64.78")))
	assert.Len(t, stored.Lines, 1)
}

func TestCreateOrder_TotalEsSumaRedondeada(t *testing.T) {
	f := newFixture(t)
	order, err := f.manager.CreateOrder(context.Background(), f.client.ID, "nueva", []ordering.LineInput{
		{ProductID: f.p1.ID, Quantity: 3, DiscountPercent: dec("12.5")},
		{ProductID: f.p2.ID, Quantity: 5, DiscountPercent: dec("7")},
	})
	require.NoError(t, err)
	assert.Equal(t, "nueva", order.Status)

	sum := decimal.Zero
	for _, l := range order.Lines {
		sum = sum.Add(l.LineTotal)
	}
	assert.True(t, order.Total.Equal(pricing.RoundCurrency(sum)), "total %s, suma %s", order.Total, sum)
}

func TestCreateOrder_SinLineas(t *testing.T) {
	f := newFixture(t)
	_, err := f.manager.CreateOrder(context.Background(), f.client.ID, "", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, f.countOrders(t))
}

func TestCreateOrder_DescuentoInvalidoAntesDePersistir(t *testing.T) {
	f := newFixture(t)
	_, err := f.manager.CreateOrder(context.Background(), f.client.ID, "", []ordering.LineInput{
		{ProductID: f.p1.ID, Quantity: 1, DiscountPercent: dec("150")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)
	assert.Zero(t, f.countOrders(t))
}

func TestCreateOrder_CantidadInvalida(t *testing.T) {
	f := newFixture(t)
	_, err := f.manager.CreateOrder(context.Background(), f.client.ID, "", []ordering.LineInput{
		{ProductID: f.p1.ID, Quantity: 0},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestCreateOrder_ClienteInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.manager.CreateOrder(context.Background(), 999, "", []ordering.LineInput{{ProductID: f.p1.ID, Quantity: 1}})

	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, domain.EntityClient, nf.Entity)
	assert.Equal(t, int64(999), nf.ID)
	assert.Zero(t, f.countOrders(t))
}

func TestCreateOrder_ProductoInexistenteRevierteTodo(t *testing.T) {
	f := newFixture(t)
	_, err := f.manager.CreateOrder(context.Background(), f.client.ID, "", []ordering.LineInput{
		{ProductID: f.p1.ID, Quantity: 1},
		{ProductID: 999, Quantity: 1},
	})
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, domain.EntityProduct, nf.Entity)
	assert.Equal(t, int64(999), nf.ID)

	assert.Zero(t, f.countOrders(t), "ni la cabecera ni la primera línea quedan persistidas")
}

func TestCreateOrder_StockInsuficiente(t *testing.T) {
	f := newFixture(t)
	_, err := f.manager.CreateOrder(context.Background(), f.client.ID, "", []ordering.LineInput{
		{ProductID: f.p1.ID, Quantity: 60},
	})
	var se *domain.StockError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, f.p1.ID, se.ProductID)
	assert.Equal(t, 60, se.Requested)
	assert.Equal(t, 50, se.Available)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Zero(t, f.countOrders(t))
}

func TestCreateOrder_NoDescuentaStock(t *testing.T) {
	f := newFixture(t)
	_, err := f.manager.CreateOrder(context.Background(), f.client.ID, "", []ordering.LineInput{{ProductID: f.p2.ID, Quantity: 5}})
	require.NoError(t, err)

	p, err := f.store.Products().GetByID(context.Background(), f.p2.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)
}

// ─── UpdateOrder ─────────────────────────────────────────────────────────────

func TestUpdateOrder_ReemplazaLineas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order, err := f.manager.CreateOrder(ctx, f.client.ID, "", []ordering.LineInput{
		{ProductID: f.p1.ID, Quantity: 2},
		{ProductID: f.p2.ID, Quantity: 1},
	})
	require.NoError(t, err)

	updated, err := f.manager.UpdateOrder(ctx, order.ID, f.client.ID, "", []ordering.LineInput{
		{ProductID: f.p2.ID, Quantity: 3, DiscountPercent: dec("10")},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, updated.Status)

	stored, err := f.manager.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Lines, 1)
	assert.Equal(t, f.p2.ID, stored.Lines[0].ProductID)
	// 30 + 5.70 - 3.00
	assert.Equal(t, "32.70", stored.Total.StringFixed(2))
}

func TestUpdateOrder_FallaConservaEstadoPrevio(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order, err := f.manager.CreateOrder(ctx, f.client.ID, "", []ordering.LineInput{{ProductID: f.p1.ID, Quantity: 2}})
	require.NoError(t, err)

	_, err = f.manager.UpdateOrder(ctx, order.ID, f.client.ID, "", []ordering.LineInput{
		{ProductID: f.p2.ID, Quantity: 1},
		{ProductID: f.p2.ID, Quantity: 99},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	stored, err := f.manager.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Lines, 1)
	assert.Equal(t, f.p1.ID, stored.Lines[0].ProductID)
	assert.Equal(t, "64.78", stored.Total.StringFixed(2))
	assert.Equal(t, entity.OrderStatusPending, stored.Status)
}

func TestUpdateOrder_OrdenInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.manager.UpdateOrder(context.Background(), 42, f.client.ID, "", []ordering.LineInput{{ProductID: f.p1.ID, Quantity: 1}})
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, domain.EntityOrder, nf.Entity)
}

// ─── DeleteOrder / consultas ─────────────────────────────────────────────────

func TestDeleteOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order, err := f.manager.CreateOrder(ctx, f.client.ID, "", []ordering.LineInput{{ProductID: f.p1.ID, Quantity: 1}})
	require.NoError(t, err)

	require.NoError(t, f.manager.DeleteOrder(ctx, order.ID))
	_, err = f.manager.GetOrder(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	lines, err := f.store.Orders().ListLines(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	assert.ErrorIs(t, f.manager.DeleteOrder(ctx, order.ID), domain.ErrNotFound)
}

func TestDeleteOrder_Facturada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order, err := f.manager.CreateOrder(ctx, f.client.ID, "", []ordering.LineInput{{ProductID: f.p1.ID, Quantity: 1}})
	require.NoError(t, err)
	require.NoError(t, f.store.Invoices().Create(ctx, &entity.Invoice{OrderID: order.ID, ClientID: f.client.ID}))

	err = f.manager.DeleteOrder(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrOrderInvoiced)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.manager.GetOrder(ctx, order.ID)
	assert.NoError(t, err)
}

func TestListOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.manager.CreateOrder(ctx, f.client.ID, "", []ordering.LineInput{{ProductID: f.p1.ID, Quantity: 1}})
		require.NoError(t, err)
	}
	list, err := f.manager.ListOrders(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Límite por defecto y offset negativo normalizados.
	list, err = f.manager.ListOrders(ctx, 0, -4)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestGetOrder_IDInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.manager.GetOrder(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
