package repository

import (
	"context"

	"github.com/jhoicas/ordenes-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Invoice, error)
	// Update reescribe totales, referencias y estado.
	Update(ctx context.Context, invoice *entity.Invoice) error
	// Delete elimina la factura y sus envíos.
	Delete(ctx context.Context, id int64) error
	CountByOrder(ctx context.Context, orderID int64) (int, error)
}

// InvoiceDispatchRepository define el puerto de persistencia para los envíos de factura.
type InvoiceDispatchRepository interface {
	Create(ctx context.Context, dispatch *entity.InvoiceDispatch) error
	GetByID(ctx context.Context, id int64) (*entity.InvoiceDispatch, error)
	List(ctx context.Context, limit, offset int) ([]*entity.InvoiceDispatch, error)
	ListByInvoice(ctx context.Context, invoiceID int64) ([]*entity.InvoiceDispatch, error)
	Update(ctx context.Context, dispatch *entity.InvoiceDispatch) error
	Delete(ctx context.Context, id int64) error
}
