package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository (ordenes + detalle_orden).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador (pool o tx).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, id_cliente, total, estado, fecha_creacion`

const lineColumns = `id, id_orden, id_producto, cantidad, precio_unitario, tasa_impuesto, porcentaje_descuento,
	subtotal, impuesto, descuento, total_linea`

func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO ordenes (id_cliente, total, estado, fecha_creacion)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, o.ClientID, o.Total, o.Status, o.CreatedAt).Scan(&o.ID)
	if isForeignKeyViolation(err) {
		return domain.ClientNotFound(o.ClientID)
	}
	return dbError("insert orden", err)
}

// GetByID obtiene la cabecera de la orden, sin líneas. (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM ordenes WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get orden", err)
	}
	return o, nil
}

func (r *OrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM ordenes ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, dbError("list ordenes", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, dbError("scan orden", err)
		}
		list = append(list, o)
	}
	return list, dbError("list ordenes", rows.Err())
}

func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `UPDATE ordenes SET id_cliente = $2, total = $3, estado = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, o.ID, o.ClientID, o.Total, o.Status)
	if isForeignKeyViolation(err) {
		return domain.ClientNotFound(o.ClientID)
	}
	return dbError("update orden", err)
}

func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM ordenes WHERE id = $1`, id)
	return dbError("delete orden", err)
}

// CreateLine inserta una línea tarifada y asigna line.ID.
func (r *OrderRepo) CreateLine(ctx context.Context, l *entity.OrderLine) error {
	query := `
		INSERT INTO detalle_orden (id_orden, id_producto, cantidad, precio_unitario, tasa_impuesto,
			porcentaje_descuento, subtotal, impuesto, descuento, total_linea)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		l.OrderID, l.ProductID, l.Quantity, l.UnitPrice, l.TaxRate,
		l.DiscountPercent, l.Subtotal, l.TaxAmount, l.DiscountAmount, l.LineTotal,
	).Scan(&l.ID)
	if isForeignKeyViolation(err) {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && strings.Contains(pgErr.ConstraintName, "id_producto") {
			return domain.ProductNotFound(l.ProductID)
		}
		return domain.OrderNotFound(l.OrderID)
	}
	return dbError("insert detalle_orden", err)
}

func (r *OrderRepo) ListLines(ctx context.Context, orderID int64) ([]*entity.OrderLine, error) {
	query := `SELECT ` + lineColumns + ` FROM detalle_orden WHERE id_orden = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, dbError("list detalle_orden", err)
	}
	defer rows.Close()

	var lines []*entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(
			&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.TaxRate, &l.DiscountPercent,
			&l.Subtotal, &l.TaxAmount, &l.DiscountAmount, &l.LineTotal,
		); err != nil {
			return nil, dbError("scan detalle_orden", err)
		}
		lines = append(lines, &l)
	}
	return lines, dbError("list detalle_orden", rows.Err())
}

func (r *OrderRepo) DeleteLines(ctx context.Context, orderID int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM detalle_orden WHERE id_orden = $1`, orderID)
	return dbError("delete detalle_orden", err)
}

func (r *OrderRepo) HasInvoices(ctx context.Context, orderID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM facturas WHERE id_orden = $1)`, orderID).Scan(&exists)
	if err != nil {
		return false, dbError("count facturas", err)
	}
	return exists, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	if err := row.Scan(&o.ID, &o.ClientID, &o.Total, &o.Status, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}
