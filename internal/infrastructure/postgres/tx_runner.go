package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ordenes-api/internal/application/billing"
	"github.com/jhoicas/ordenes-api/internal/application/ordering"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

var (
	_ ordering.OrderTxRunner  = (*TxRunner)(nil)
	_ billing.InvoiceTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia una transacción, ejecuta fn con la tx y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.NewPersistence("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.NewPersistence("commit transaction", err)
	}
	return nil
}

// RunOrder transacción con repos de clientes, productos y órdenes.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewClientRepository(q), NewProductRepository(q), NewOrderRepository(q))
	})
}

// RunInvoice transacción con repos de órdenes, usuarios, tiendas y facturas.
func (r *TxRunner) RunInvoice(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	storeRepo repository.StoreRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewOrderRepository(q), NewUserRepository(q), NewStoreRepository(q), NewInvoiceRepository(q))
	})
}
