package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador (pool o tx).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, id_orden, id_cliente, id_usuario, id_tienda, total_bruto, impuestos, descuentos,
	total_neto, estado, metodo_pago, observaciones, fecha_emision`

// Create persiste la factura. Los totales ya vienen redondeados.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO facturas (id_orden, id_cliente, id_usuario, id_tienda, total_bruto, impuestos,
			descuentos, total_neto, estado, metodo_pago, observaciones, fecha_emision)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		inv.OrderID, inv.ClientID, inv.UserID, inv.StoreID, inv.GrossTotal, inv.TaxTotal,
		inv.DiscountTotal, inv.NetTotal, inv.Status, inv.PaymentMethod, inv.Notes, inv.IssuedAt,
	).Scan(&inv.ID)
	if isForeignKeyViolation(err) {
		return domain.OrderNotFound(inv.OrderID)
	}
	return dbError("insert factura", err)
}

// GetByID obtiene una factura por ID. (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM facturas WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get factura", err)
	}
	return inv, nil
}

func (r *InvoiceRepo) List(ctx context.Context, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM facturas ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, dbError("list facturas", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, dbError("scan factura", err)
		}
		list = append(list, inv)
	}
	return list, dbError("list facturas", rows.Err())
}

// Update reescribe referencias, totales y estado.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE facturas
		SET id_orden = $2, id_cliente = $3, id_usuario = $4, id_tienda = $5,
			total_bruto = $6, impuestos = $7, descuentos = $8, total_neto = $9,
			estado = $10, metodo_pago = $11, observaciones = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.OrderID, inv.ClientID, inv.UserID, inv.StoreID,
		inv.GrossTotal, inv.TaxTotal, inv.DiscountTotal, inv.NetTotal,
		inv.Status, inv.PaymentMethod, inv.Notes,
	)
	if isForeignKeyViolation(err) {
		return domain.OrderNotFound(inv.OrderID)
	}
	return dbError("update factura", err)
}

// Delete elimina la factura; envios_factura cae por ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM facturas WHERE id = $1`, id)
	return dbError("delete factura", err)
}

func (r *InvoiceRepo) CountByOrder(ctx context.Context, orderID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM facturas WHERE id_orden = $1`, orderID).Scan(&n)
	if err != nil {
		return 0, dbError("count facturas", err)
	}
	return n, nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.OrderID, &inv.ClientID, &inv.UserID, &inv.StoreID,
		&inv.GrossTotal, &inv.TaxTotal, &inv.DiscountTotal, &inv.NetTotal,
		&inv.Status, &inv.PaymentMethod, &inv.Notes, &inv.IssuedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
