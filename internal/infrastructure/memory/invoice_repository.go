package memory

import (
	"context"

	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

var (
	_ repository.InvoiceRepository         = (*InvoiceRepo)(nil)
	_ repository.InvoiceDispatchRepository = (*DispatchRepo)(nil)
)

// InvoiceRepo facturas en memoria.
type InvoiceRepo struct{ base }

func (r *InvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	defer r.lock()()
	if _, ok := r.db().orders[inv.OrderID]; !ok {
		return domain.OrderNotFound(inv.OrderID)
	}
	inv.ID = r.nextID("facturas")
	r.db().invoices[inv.ID] = *inv
	return nil
}

func (r *InvoiceRepo) GetByID(_ context.Context, id int64) (*entity.Invoice, error) {
	defer r.lock()()
	return get(r.db().invoices, id), nil
}

func (r *InvoiceRepo) List(_ context.Context, limit, offset int) ([]*entity.Invoice, error) {
	defer r.lock()()
	return page(r.db().invoices, limit, offset, nil), nil
}

func (r *InvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	defer r.lock()()
	if _, ok := r.db().invoices[inv.ID]; ok {
		r.db().invoices[inv.ID] = *inv
	}
	return nil
}

// Delete elimina la factura y sus envíos (ON DELETE CASCADE).
func (r *InvoiceRepo) Delete(_ context.Context, id int64) error {
	defer r.lock()()
	db := r.db()
	for did, d := range db.dispatches {
		if d.InvoiceID == id {
			delete(db.dispatches, did)
		}
	}
	delete(db.invoices, id)
	return nil
}

func (r *InvoiceRepo) CountByOrder(_ context.Context, orderID int64) (int, error) {
	defer r.lock()()
	n := 0
	for _, inv := range r.db().invoices {
		if inv.OrderID == orderID {
			n++
		}
	}
	return n, nil
}

// DispatchRepo envíos de factura en memoria.
type DispatchRepo struct{ base }

func (r *DispatchRepo) Create(_ context.Context, d *entity.InvoiceDispatch) error {
	defer r.lock()()
	if _, ok := r.db().invoices[d.InvoiceID]; !ok {
		return domain.InvoiceNotFound(d.InvoiceID)
	}
	d.ID = r.nextID("envios_factura")
	r.db().dispatches[d.ID] = *d
	return nil
}

func (r *DispatchRepo) GetByID(_ context.Context, id int64) (*entity.InvoiceDispatch, error) {
	defer r.lock()()
	return get(r.db().dispatches, id), nil
}

func (r *DispatchRepo) List(_ context.Context, limit, offset int) ([]*entity.InvoiceDispatch, error) {
	defer r.lock()()
	return page(r.db().dispatches, limit, offset, nil), nil
}

func (r *DispatchRepo) ListByInvoice(_ context.Context, invoiceID int64) ([]*entity.InvoiceDispatch, error) {
	defer r.lock()()
	return page(r.db().dispatches, 0, 0, func(d entity.InvoiceDispatch) bool { return d.InvoiceID == invoiceID }), nil
}

func (r *DispatchRepo) Update(_ context.Context, d *entity.InvoiceDispatch) error {
	defer r.lock()()
	if _, ok := r.db().dispatches[d.ID]; ok {
		r.db().dispatches[d.ID] = *d
	}
	return nil
}

func (r *DispatchRepo) Delete(_ context.Context, id int64) error {
	defer r.lock()()
	delete(r.db().dispatches, id)
	return nil
}
