package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/application/usecase"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/infrastructure/memory"
)

func ptr[T any](v T) *T { return &v }

// ─── Clientes ────────────────────────────────────────────────────────────────

func TestClientUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewClientUseCase(memory.New().Clients())

	created, err := uc.Create(ctx, dto.CreateClientRequest{FirstName: "Ana", LastName: "Gómez", Email: "Ana@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", created.Email)
	assert.Equal(t, entity.ClientStatusActive, created.Status)

	upd, err := uc.Update(ctx, created.ID, dto.UpdateClientRequest{Phone: ptr("3001234567")})
	require.NoError(t, err)
	assert.Equal(t, "3001234567", upd.Phone)
	assert.Equal(t, "Ana", upd.FirstName)

	list, err := uc.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientUseCase_CorreoInvalido(t *testing.T) {
	uc := usecase.NewClientUseCase(memory.New().Clients())
	_, err := uc.Create(context.Background(), dto.CreateClientRequest{FirstName: "Ana", LastName: "G", Email: "ana"})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "correo", verr.Field)
}

func TestClientUseCase_ConOrdenesNoSeElimina(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	uc := usecase.NewClientUseCase(st.Clients())
	c, err := uc.Create(ctx, dto.CreateClientRequest{FirstName: "Ana", LastName: "G", Email: "ana@example.com"})
	require.NoError(t, err)
	require.NoError(t, st.Orders().Create(ctx, &entity.Order{ClientID: c.ID}))

	assert.ErrorIs(t, uc.Delete(ctx, c.ID), domain.ErrConflict)
}

// ─── Productos ───────────────────────────────────────────────────────────────

func TestProductUseCase_Validaciones(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.New().Products())

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Café", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Café", Price: decimal.NewFromInt(1), TaxRate: decimal.NewFromInt(101)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Café", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_CreateYUpdate(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.New().Products())

	p, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Café", Price: decimal.RequireFromString("29.99"), TaxRate: decimal.NewFromInt(8), Stock: 50,
	})
	require.NoError(t, err)

	upd, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{Price: ptr(decimal.RequireFromString("31.5")), Stock: ptr(10)})
	require.NoError(t, err)
	assert.Equal(t, "31.50", upd.Price.StringFixed(2))
	assert.Equal(t, 10, upd.Stock)
	assert.Equal(t, "Café", upd.Name)

	page, err := uc.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 10, page.Page.Limit)

	_, err = uc.GetByID(ctx, 999)
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, domain.EntityProduct, nf.Entity)
}

// ─── Usuarios y roles ────────────────────────────────────────────────────────

func newUserUseCase(t *testing.T) (*usecase.UserUseCase, int64) {
	t.Helper()
	st := memory.New()
	roles := usecase.NewRoleUseCase(st.Roles())
	role, err := roles.Create(context.Background(), dto.CreateRoleRequest{Type: "cajero"})
	require.NoError(t, err)
	return usecase.NewUserUseCase(st.Users(), st.Roles()).WithHashCost(bcrypt.MinCost), role.ID
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()
	uc, roleID := newUserUseCase(t)

	u, err := uc.Create(ctx, dto.CreateUserRequest{RoleID: roleID, Name: "Luis", Email: "luis@example.com", Password: "Secr3t!x"})
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusActive, u.Status)

	_, err = uc.Create(ctx, dto.CreateUserRequest{RoleID: roleID, Name: "Otro", Email: "LUIS@example.com", Password: "Secr3t!x"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserUseCase_ClaveDebil(t *testing.T) {
	uc, roleID := newUserUseCase(t)
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{RoleID: roleID, Name: "Luis", Email: "luis@example.com", Password: "secreto"})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "clave", verr.Field)
}

func TestUserUseCase_RolInexistente(t *testing.T) {
	uc, _ := newUserUseCase(t)
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{RoleID: 77, Name: "Luis", Email: "luis@example.com", Password: "Secr3t!x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserUseCase_ClaveHasheada(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	role := &entity.Role{Type: "admin"}
	require.NoError(t, st.Roles().Create(ctx, role))
	uc := usecase.NewUserUseCase(st.Users(), st.Roles()).WithHashCost(bcrypt.MinCost)

	u, err := uc.Create(ctx, dto.CreateUserRequest{RoleID: role.ID, Name: "Luis", Email: "luis@example.com", Password: "Secr3t!x"})
	require.NoError(t, err)

	stored, err := st.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Secr3t!x", stored.PasswordHash)
	assert.True(t, usecase.CheckPassword(stored.PasswordHash, "Secr3t!x"))

	_, err = uc.Update(ctx, u.ID, dto.UpdateUserRequest{Password: ptr("N3w!pass")})
	require.NoError(t, err)
	stored, err = st.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, usecase.CheckPassword(stored.PasswordHash, "N3w!pass"))
}

// ─── Tiendas ─────────────────────────────────────────────────────────────────

func TestStoreUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewStoreUseCase(memory.New().Stores())

	s, err := uc.Create(ctx, dto.CreateStoreRequest{Name: "Centro", Email: "CENTRO@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "centro@example.com", s.Email)

	upd, err := uc.Update(ctx, s.ID, dto.UpdateStoreRequest{LegalInfo: ptr("NIT 900.123.456-7")})
	require.NoError(t, err)
	assert.Equal(t, "NIT 900.123.456-7", upd.LegalInfo)

	require.NoError(t, uc.Delete(ctx, s.ID))
	assert.ErrorIs(t, uc.Delete(ctx, s.ID), domain.ErrNotFound)
}
