package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

var (
	_ repository.ClientRepository  = (*ClientRepo)(nil)
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.StoreRepository   = (*StoreRepo)(nil)
	_ repository.RoleRepository    = (*RoleRepo)(nil)
	_ repository.UserRepository    = (*UserRepo)(nil)
)

// ─── Clientes ────────────────────────────────────────────────────────────────

// ClientRepo clientes en memoria.
type ClientRepo struct{ base }

func (r *ClientRepo) Create(_ context.Context, c *entity.Client) error {
	defer r.lock()()
	c.ID = r.nextID("clientes")
	r.db().clients[c.ID] = *c
	return nil
}

func (r *ClientRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	defer r.lock()()
	return get(r.db().clients, id), nil
}

func (r *ClientRepo) List(_ context.Context, limit, offset int) ([]*entity.Client, error) {
	defer r.lock()()
	return page(r.db().clients, limit, offset, nil), nil
}

func (r *ClientRepo) Update(_ context.Context, c *entity.Client) error {
	defer r.lock()()
	if _, ok := r.db().clients[c.ID]; ok {
		r.db().clients[c.ID] = *c
	}
	return nil
}

func (r *ClientRepo) Delete(_ context.Context, id int64) error {
	defer r.lock()()
	db := r.db()
	for _, o := range db.orders {
		if o.ClientID == id {
			return domain.ErrInUse
		}
	}
	for _, inv := range db.invoices {
		if inv.ClientID == id {
			return domain.ErrInUse
		}
	}
	delete(db.clients, id)
	return nil
}

// ─── Productos ───────────────────────────────────────────────────────────────

// ProductRepo productos en memoria.
type ProductRepo struct{ base }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	defer r.lock()()
	p.ID = r.nextID("productos")
	r.db().products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	defer r.lock()()
	return get(r.db().products, id), nil
}

func (r *ProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	defer r.lock()()
	return page(r.db().products, limit, offset, nil), nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	defer r.lock()()
	if _, ok := r.db().products[p.ID]; ok {
		r.db().products[p.ID] = *p
	}
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	defer r.lock()()
	db := r.db()
	for _, l := range db.lines {
		if l.ProductID == id {
			return domain.ErrInUse
		}
	}
	delete(db.products, id)
	return nil
}

// ─── Tiendas ─────────────────────────────────────────────────────────────────

// StoreRepo tiendas en memoria.
type StoreRepo struct{ base }

func (r *StoreRepo) Create(_ context.Context, st *entity.Store) error {
	defer r.lock()()
	st.ID = r.nextID("tiendas")
	r.db().stores[st.ID] = *st
	return nil
}

func (r *StoreRepo) GetByID(_ context.Context, id int64) (*entity.Store, error) {
	defer r.lock()()
	return get(r.db().stores, id), nil
}

func (r *StoreRepo) List(_ context.Context, limit, offset int) ([]*entity.Store, error) {
	defer r.lock()()
	return page(r.db().stores, limit, offset, nil), nil
}

func (r *StoreRepo) Update(_ context.Context, st *entity.Store) error {
	defer r.lock()()
	if _, ok := r.db().stores[st.ID]; ok {
		r.db().stores[st.ID] = *st
	}
	return nil
}

func (r *StoreRepo) Delete(_ context.Context, id int64) error {
	defer r.lock()()
	db := r.db()
	for _, inv := range db.invoices {
		if inv.StoreID == id {
			return domain.ErrInUse
		}
	}
	delete(db.stores, id)
	return nil
}

// ─── Roles ───────────────────────────────────────────────────────────────────

// RoleRepo roles en memoria.
type RoleRepo struct{ base }

func (r *RoleRepo) Create(_ context.Context, role *entity.Role) error {
	defer r.lock()()
	role.ID = r.nextID("roles")
	r.db().roles[role.ID] = *role
	return nil
}

func (r *RoleRepo) GetByID(_ context.Context, id int64) (*entity.Role, error) {
	defer r.lock()()
	return get(r.db().roles, id), nil
}

func (r *RoleRepo) List(_ context.Context, limit, offset int) ([]*entity.Role, error) {
	defer r.lock()()
	return page(r.db().roles, limit, offset, nil), nil
}

func (r *RoleRepo) Update(_ context.Context, role *entity.Role) error {
	defer r.lock()()
	if _, ok := r.db().roles[role.ID]; ok {
		r.db().roles[role.ID] = *role
	}
	return nil
}

func (r *RoleRepo) Delete(_ context.Context, id int64) error {
	defer r.lock()()
	db := r.db()
	for _, u := range db.users {
		if u.RoleID == id {
			return domain.ErrInUse
		}
	}
	delete(db.roles, id)
	return nil
}

// ─── Usuarios ────────────────────────────────────────────────────────────────

// UserRepo usuarios en memoria. El correo es único (sin distinguir mayúsculas).
type UserRepo struct{ base }

func (r *UserRepo) emailTaken(email string, exceptID int64) bool {
	for _, u := range r.db().users {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	defer r.lock()()
	if r.emailTaken(u.Email, 0) {
		return domain.ErrEmailAlreadyExists
	}
	u.ID = r.nextID("usuarios")
	r.db().users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	defer r.lock()()
	return get(r.db().users, id), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	defer r.lock()()
	for _, u := range r.db().users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	defer r.lock()()
	return page(r.db().users, limit, offset, nil), nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	defer r.lock()()
	if _, ok := r.db().users[u.ID]; !ok {
		return nil
	}
	if r.emailTaken(u.Email, u.ID) {
		return domain.ErrEmailAlreadyExists
	}
	r.db().users[u.ID] = *u
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id int64) error {
	defer r.lock()()
	db := r.db()
	for _, inv := range db.invoices {
		if inv.UserID == id {
			return domain.ErrInUse
		}
	}
	delete(db.users, id)
	return nil
}
