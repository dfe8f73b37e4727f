package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

func TestRunOrder_RevierteSiFalla(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Clients().Create(ctx, &entity.Client{FirstName: "Ana"}))

	boom := errors.New("boom")
	err := s.RunOrder(ctx, func(_ repository.ClientRepository, _ repository.ProductRepository, orders repository.OrderRepository) error {
		require.NoError(t, orders.Create(ctx, &entity.Order{ClientID: 1, Total: decimal.Zero}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := s.Orders().List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRunOrder_ConfirmaSiTodoSale(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Products().Create(ctx, &entity.Product{Name: "P", Price: decimal.NewFromInt(5), Stock: 3}))

	err := s.RunOrder(ctx, func(_ repository.ClientRepository, _ repository.ProductRepository, orders repository.OrderRepository) error {
		o := &entity.Order{ClientID: 1}
		if err := orders.Create(ctx, o); err != nil {
			return err
		}
		return orders.CreateLine(ctx, &entity.OrderLine{OrderID: o.ID, ProductID: 1, Quantity: 1})
	})
	require.NoError(t, err)

	lines, err := s.Orders().ListLines(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestSecuencia_NoReutilizaIDs(t *testing.T) {
	ctx := context.Background()
	s := New()
	_ = s.RunOrder(ctx, func(_ repository.ClientRepository, _ repository.ProductRepository, orders repository.OrderRepository) error {
		_ = orders.Create(ctx, &entity.Order{})
		return errors.New("rollback")
	})
	o := &entity.Order{}
	require.NoError(t, s.Orders().Create(ctx, o))
	assert.Equal(t, int64(2), o.ID)
}

func TestCopiasPorValor(t *testing.T) {
	ctx := context.Background()
	s := New()
	c := &entity.Client{FirstName: "Ana"}
	require.NoError(t, s.Clients().Create(ctx, c))

	got, err := s.Clients().GetByID(ctx, c.ID)
	require.NoError(t, err)
	got.FirstName = "Modificado"

	again, err := s.Clients().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", again.FirstName)
}

func TestDelete_ReferenciasActivas(t *testing.T) {
	ctx := context.Background()
	s := New()
	c := &entity.Client{FirstName: "Ana"}
	require.NoError(t, s.Clients().Create(ctx, c))
	require.NoError(t, s.Orders().Create(ctx, &entity.Order{ClientID: c.ID}))

	err := s.Clients().Delete(ctx, c.ID)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestUsuarios_CorreoUnico(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Users().Create(ctx, &entity.User{Email: "ana@example.com"}))
	err := s.Users().Create(ctx, &entity.User{Email: "ANA@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestInvoiceDelete_EliminaEnvios(t *testing.T) {
	ctx := context.Background()
	s := New()
	o := &entity.Order{}
	require.NoError(t, s.Orders().Create(ctx, o))
	inv := &entity.Invoice{OrderID: o.ID}
	require.NoError(t, s.Invoices().Create(ctx, inv))
	require.NoError(t, s.Dispatches().Create(ctx, &entity.InvoiceDispatch{InvoiceID: inv.ID}))

	require.NoError(t, s.Invoices().Delete(ctx, inv.ID))
	left, err := s.Dispatches().ListByInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestList_Paginacion(t *testing.T) {
	ctx := context.Background()
	s := New()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Roles().Create(ctx, &entity.Role{Type: "r"}))
	}
	got, err := s.Roles().List(ctx, 2, 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(4), got[0].ID)
	assert.Equal(t, int64(5), got[1].ID)
}
