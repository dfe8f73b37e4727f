package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

var _ repository.InvoiceDispatchRepository = (*DispatchRepo)(nil)

// DispatchRepo implementación del puerto InvoiceDispatchRepository (envios_factura).
type DispatchRepo struct {
	q Querier
}

func NewDispatchRepository(q Querier) *DispatchRepo {
	return &DispatchRepo{q: q}
}

const dispatchColumns = `id, id_factura, estado, canal, destinatario, entregado, error_entrega, fecha_envio`

func (r *DispatchRepo) Create(ctx context.Context, d *entity.InvoiceDispatch) error {
	query := `
		INSERT INTO envios_factura (id_factura, estado, canal, destinatario, entregado, error_entrega, fecha_envio)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		d.InvoiceID, d.Status, d.Channel, d.Recipient, d.Delivered, d.DeliveryError, d.SentAt,
	).Scan(&d.ID)
	if isForeignKeyViolation(err) {
		return domain.InvoiceNotFound(d.InvoiceID)
	}
	return dbError("insert envio_factura", err)
}

func (r *DispatchRepo) GetByID(ctx context.Context, id int64) (*entity.InvoiceDispatch, error) {
	query := `SELECT ` + dispatchColumns + ` FROM envios_factura WHERE id = $1`
	d, err := scanDispatch(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get envio_factura", err)
	}
	return d, nil
}

func (r *DispatchRepo) List(ctx context.Context, limit, offset int) ([]*entity.InvoiceDispatch, error) {
	query := `SELECT ` + dispatchColumns + ` FROM envios_factura ORDER BY id LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

func (r *DispatchRepo) ListByInvoice(ctx context.Context, invoiceID int64) ([]*entity.InvoiceDispatch, error) {
	query := `SELECT ` + dispatchColumns + ` FROM envios_factura WHERE id_factura = $1 ORDER BY id`
	return r.list(ctx, query, invoiceID)
}

func (r *DispatchRepo) list(ctx context.Context, query string, args ...any) ([]*entity.InvoiceDispatch, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, dbError("list envios_factura", err)
	}
	defer rows.Close()

	var list []*entity.InvoiceDispatch
	for rows.Next() {
		d, err := scanDispatch(rows)
		if err != nil {
			return nil, dbError("scan envio_factura", err)
		}
		list = append(list, d)
	}
	return list, dbError("list envios_factura", rows.Err())
}

func (r *DispatchRepo) Update(ctx context.Context, d *entity.InvoiceDispatch) error {
	query := `
		UPDATE envios_factura
		SET estado = $2, canal = $3, destinatario = $4, entregado = $5, error_entrega = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, d.ID, d.Status, d.Channel, d.Recipient, d.Delivered, d.DeliveryError)
	return dbError("update envio_factura", err)
}

func (r *DispatchRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM envios_factura WHERE id = $1`, id)
	return dbError("delete envio_factura", err)
}

func scanDispatch(row pgx.Row) (*entity.InvoiceDispatch, error) {
	var d entity.InvoiceDispatch
	err := row.Scan(&d.ID, &d.InvoiceID, &d.Status, &d.Channel, &d.Recipient, &d.Delivered, &d.DeliveryError, &d.SentAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
