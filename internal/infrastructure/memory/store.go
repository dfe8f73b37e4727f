// Package memory implementa los puertos de persistencia en memoria (STORAGE_DRIVER=memory).
// Las unidades de trabajo se serializan con un mutex y se revierten restaurando una copia del estado.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

type tables struct {
	clients    map[int64]entity.Client
	products   map[int64]entity.Product
	stores     map[int64]entity.Store
	roles      map[int64]entity.Role
	users      map[int64]entity.User
	orders     map[int64]entity.Order
	lines      map[int64]entity.OrderLine
	invoices   map[int64]entity.Invoice
	dispatches map[int64]entity.InvoiceDispatch
}

func newTables() *tables {
	return &tables{
		clients:    map[int64]entity.Client{},
		products:   map[int64]entity.Product{},
		stores:     map[int64]entity.Store{},
		roles:      map[int64]entity.Role{},
		users:      map[int64]entity.User{},
		orders:     map[int64]entity.Order{},
		lines:      map[int64]entity.OrderLine{},
		invoices:   map[int64]entity.Invoice{},
		dispatches: map[int64]entity.InvoiceDispatch{},
	}
}

// clone copia superficial de cada tabla; los valores se guardan por valor.
func (t *tables) clone() *tables {
	return &tables{
		clients:    maps.Clone(t.clients),
		products:   maps.Clone(t.products),
		stores:     maps.Clone(t.stores),
		roles:      maps.Clone(t.roles),
		users:      maps.Clone(t.users),
		orders:     maps.Clone(t.orders),
		lines:      maps.Clone(t.lines),
		invoices:   maps.Clone(t.invoices),
		dispatches: maps.Clone(t.dispatches),
	}
}

// Store almacén en memoria. Es seguro para uso concurrente.
type Store struct {
	mu   sync.Mutex
	data *tables
	seq  map[string]int64
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{data: newTables(), seq: map[string]int64{}}
}

// base comparte el Store; inTx indica que el mutex ya lo tiene la unidad de trabajo.
type base struct {
	s    *Store
	inTx bool
}

func (b base) lock() func() {
	if b.inTx {
		return func() {}
	}
	b.s.mu.Lock()
	return b.s.mu.Unlock
}

func (b base) db() *tables { return b.s.data }

// nextID emula BIGSERIAL: la secuencia no vuelve atrás aunque la unidad de trabajo falle.
func (b base) nextID(table string) int64 {
	b.s.seq[table]++
	return b.s.seq[table]
}

// Repositorios fuera de transacción.

func (s *Store) Clients() *ClientRepo      { return &ClientRepo{base{s: s}} }
func (s *Store) Products() *ProductRepo    { return &ProductRepo{base{s: s}} }
func (s *Store) Stores() *StoreRepo        { return &StoreRepo{base{s: s}} }
func (s *Store) Roles() *RoleRepo          { return &RoleRepo{base{s: s}} }
func (s *Store) Users() *UserRepo          { return &UserRepo{base{s: s}} }
func (s *Store) Orders() *OrderRepo        { return &OrderRepo{base{s: s}} }
func (s *Store) Invoices() *InvoiceRepo    { return &InvoiceRepo{base{s: s}} }
func (s *Store) Dispatches() *DispatchRepo { return &DispatchRepo{base{s: s}} }

// run ejecuta fn con el mutex tomado; si fn falla restaura el estado previo.
func (s *Store) run(ctx context.Context, fn func(b base) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(base{s: s, inTx: true}); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

// RunOrder unidad de trabajo de órdenes.
func (s *Store) RunOrder(ctx context.Context, fn func(
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	return s.run(ctx, func(b base) error {
		return fn(&ClientRepo{b}, &ProductRepo{b}, &OrderRepo{b})
	})
}

// RunInvoice unidad de trabajo de facturación.
func (s *Store) RunInvoice(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	storeRepo repository.StoreRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return s.run(ctx, func(b base) error {
		return fn(&OrderRepo{b}, &UserRepo{b}, &StoreRepo{b}, &InvoiceRepo{b})
	})
}

// Ping siempre responde; mantiene la misma forma que el pool de PostgreSQL para /health.
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// page ordena por ID y aplica limit/offset.
func page[T any](m map[int64]T, limit, offset int, keep func(T) bool) []*T {
	ids := slices.Sorted(maps.Keys(m))
	out := make([]*T, 0)
	skipped := 0
	for _, id := range ids {
		v := m[id]
		if keep != nil && !keep(v) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, &v)
	}
	return out
}

func get[T any](m map[int64]T, id int64) *T {
	v, ok := m[id]
	if !ok {
		return nil
	}
	return &v
}
