package ordering

import (
	"context"

	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// OrderTxRunner ejecuta fn dentro de una unidad de trabajo con repos atados a ella.
// Si fn devuelve error (o falla el commit) no queda nada persistido.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		clientRepo repository.ClientRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
