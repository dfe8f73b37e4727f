package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordenes-api/internal/application/billing"
	"github.com/jhoicas/ordenes-api/internal/application/ordering"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/infrastructure/memory"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

type fixture struct {
	store      *memory.Store
	aggregator *billing.InvoiceAggregator
	client     *entity.Client
	user       *entity.User
	shop       *entity.Store
	order      *entity.Order
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newFixture crea cliente, usuario, tienda y una orden de dos líneas:
// 2 x 29.99 (8%) + 3 x 10.00 (19%, 10% de descuento).
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	st := memory.New()

	client := &entity.Client{FirstName: "Ana", LastName: "Gómez", Email: "ana@example.com", Status: entity.ClientStatusActive}
	require.NoError(t, st.Clients().Create(ctx, client))
	role := &entity.Role{Type: "cajero"}
	require.NoError(t, st.Roles().Create(ctx, role))
	user := &entity.User{RoleID: role.ID, Name: "Luis", Email: "luis@example.com", Status: entity.UserStatusActive}
	require.NoError(t, st.Users().Create(ctx, user))
	shop := &entity.Store{Name: "Tienda Centro", Address: "Calle 1 # 2-3", Email: "centro@example.com"}
	require.NoError(t, st.Stores().Create(ctx, shop))

	p1 := &entity.Product{Name: "Café", Price: dec("29.99"), TaxRate: dec("8"), Stock: 50}
	require.NoError(t, st.Products().Create(ctx, p1))
	p2 := &entity.Product{Name: "Taza", Price: dec("10.00"), TaxRate: dec("19"), Stock: 10}
	require.NoError(t, st.Products().Create(ctx, p2))

	om := ordering.NewOrderManager(st, st.Orders(), logger.Nop())
	order, err := om.CreateOrder(ctx, client.ID, "", []ordering.LineInput{
		{ProductID: p1.ID, Quantity: 2},
		{ProductID: p2.ID, Quantity: 3, DiscountPercent: dec("10")},
	})
	require.NoError(t, err)

	return &fixture{
		store:      st,
		aggregator: billing.NewInvoiceAggregator(st, st.Invoices(), logger.Nop()),
		client:     client,
		user:       user,
		shop:       shop,
		order:      order,
	}
}

func (f *fixture) input() billing.IssueInvoiceInput {
	return billing.IssueInvoiceInput{OrderID: f.order.ID, UserID: f.user.ID, StoreID: f.shop.ID, PaymentMethod: "efectivo"}
}
