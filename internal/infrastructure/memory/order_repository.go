package memory

import (
	"context"

	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo órdenes y líneas en memoria. Las cabeceras se guardan sin líneas.
type OrderRepo struct{ base }

func (r *OrderRepo) Create(_ context.Context, o *entity.Order) error {
	defer r.lock()()
	o.ID = r.nextID("ordenes")
	r.db().orders[o.ID] = header(o)
	return nil
}

func (r *OrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	defer r.lock()()
	return get(r.db().orders, id), nil
}

func (r *OrderRepo) List(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	defer r.lock()()
	return page(r.db().orders, limit, offset, nil), nil
}

func (r *OrderRepo) Update(_ context.Context, o *entity.Order) error {
	defer r.lock()()
	if _, ok := r.db().orders[o.ID]; ok {
		r.db().orders[o.ID] = header(o)
	}
	return nil
}

// Delete falla con ErrInUse si quedan líneas o facturas, igual que las FK en PostgreSQL.
func (r *OrderRepo) Delete(_ context.Context, id int64) error {
	defer r.lock()()
	db := r.db()
	for _, l := range db.lines {
		if l.OrderID == id {
			return domain.ErrInUse
		}
	}
	for _, inv := range db.invoices {
		if inv.OrderID == id {
			return domain.ErrInUse
		}
	}
	delete(db.orders, id)
	return nil
}

func (r *OrderRepo) CreateLine(_ context.Context, l *entity.OrderLine) error {
	defer r.lock()()
	db := r.db()
	if _, ok := db.orders[l.OrderID]; !ok {
		return domain.OrderNotFound(l.OrderID)
	}
	if _, ok := db.products[l.ProductID]; !ok {
		return domain.ProductNotFound(l.ProductID)
	}
	l.ID = r.nextID("detalle_orden")
	db.lines[l.ID] = *l
	return nil
}

func (r *OrderRepo) ListLines(_ context.Context, orderID int64) ([]*entity.OrderLine, error) {
	defer r.lock()()
	return page(r.db().lines, 0, 0, func(l entity.OrderLine) bool { return l.OrderID == orderID }), nil
}

func (r *OrderRepo) DeleteLines(_ context.Context, orderID int64) error {
	defer r.lock()()
	db := r.db()
	for id, l := range db.lines {
		if l.OrderID == orderID {
			delete(db.lines, id)
		}
	}
	return nil
}

func (r *OrderRepo) HasInvoices(_ context.Context, orderID int64) (bool, error) {
	defer r.lock()()
	for _, inv := range r.db().invoices {
		if inv.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func header(o *entity.Order) entity.Order {
	h := *o
	h.Lines = nil
	return h
}
