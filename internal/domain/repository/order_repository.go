package repository

import (
	"context"

	"github.com/jhoicas/ordenes-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas (detalle_orden).
type OrderRepository interface {
	// Create inserta la cabecera y asigna order.ID.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	// Update persiste cliente, total y estado de la cabecera.
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id int64) error

	CreateLine(ctx context.Context, line *entity.OrderLine) error
	ListLines(ctx context.Context, orderID int64) ([]*entity.OrderLine, error)
	DeleteLines(ctx context.Context, orderID int64) error

	// HasInvoices indica si alguna factura referencia la orden.
	HasInvoices(ctx context.Context, orderID int64) (bool, error)
}
