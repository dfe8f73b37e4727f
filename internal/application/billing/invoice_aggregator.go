package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/pricing"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

// totalsTolerance diferencia máxima aceptada entre el total de la orden y la suma de sus líneas.
var totalsTolerance = decimal.New(1, -2)

// IssueInvoiceInput datos para emitir o reemitir una factura. El cliente sale de la orden.
type IssueInvoiceInput struct {
	OrderID       int64
	UserID        int64
	StoreID       int64
	PaymentMethod string
	Notes         string
	Status        string
}

func (in IssueInvoiceInput) validate() error {
	switch {
	case in.OrderID <= 0:
		return domain.NewValidation("id_orden", "es obligatorio")
	case in.UserID <= 0:
		return domain.NewValidation("id_usuario", "es obligatorio")
	case in.StoreID <= 0:
		return domain.NewValidation("id_tienda", "es obligatorio")
	}
	return nil
}

// InvoiceAggregator deriva facturas de las líneas persistidas de una orden.
type InvoiceAggregator struct {
	txRunner    InvoiceTxRunner
	invoiceRepo repository.InvoiceRepository
	log         *logger.Logger
	now         func() time.Time
}

// NewInvoiceAggregator construye el caso de uso. invoiceRepo se usa para lecturas fuera de transacción.
func NewInvoiceAggregator(txRunner InvoiceTxRunner, invoiceRepo repository.InvoiceRepository, log *logger.Logger) *InvoiceAggregator {
	return &InvoiceAggregator{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		log:         log.Named("billing"),
		now:         time.Now,
	}
}

// IssueInvoice crea la factura de una orden existente en una sola transacción.
// Se permiten varias facturas por orden (reemisiones); se registra una advertencia.
func (a *InvoiceAggregator) IssueInvoice(ctx context.Context, in IssueInvoiceInput) (*entity.Invoice, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusIssued
	}

	var inv *entity.Invoice
	var previous int
	err := a.txRunner.RunInvoice(ctx, func(
		orderRepo repository.OrderRepository,
		userRepo repository.UserRepository,
		storeRepo repository.StoreRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		order, err := loadReferences(ctx, orderRepo, userRepo, storeRepo, in)
		if err != nil {
			return err
		}
		totals, err := aggregate(ctx, orderRepo, order)
		if err != nil {
			return err
		}
		if previous, err = invoiceRepo.CountByOrder(ctx, order.ID); err != nil {
			return err
		}

		inv = &entity.Invoice{
			OrderID:       order.ID,
			ClientID:      order.ClientID,
			UserID:        in.UserID,
			StoreID:       in.StoreID,
			GrossTotal:    totals.Gross,
			TaxTotal:      totals.Tax,
			DiscountTotal: totals.Discount,
			NetTotal:      totals.Net,
			Status:        status,
			PaymentMethod: in.PaymentMethod,
			Notes:         in.Notes,
			IssuedAt:      a.now(),
		}
		return invoiceRepo.Create(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	if previous > 0 {
		a.log.Warn().Int64("order_id", in.OrderID).Int("previous_invoices", previous).
			Msg("la orden ya tenía facturas; se emite otra")
	}
	a.log.Info().Int64("invoice_id", inv.ID).Int64("order_id", inv.OrderID).
		Str("net_total", inv.NetTotal.StringFixed(2)).Msg("factura emitida")
	return inv, nil
}

// UpdateInvoice vuelve a derivar todos los totales desde la orden indicada.
// Un estado vacío conserva el actual; la fecha de emisión no cambia.
func (a *InvoiceAggregator) UpdateInvoice(ctx context.Context, invoiceID int64, in IssueInvoiceInput) (*entity.Invoice, error) {
	if invoiceID <= 0 {
		return nil, domain.ErrInvalidID
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	var inv *entity.Invoice
	err := a.txRunner.RunInvoice(ctx, func(
		orderRepo repository.OrderRepository,
		userRepo repository.UserRepository,
		storeRepo repository.StoreRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		current, err := invoiceRepo.GetByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.InvoiceNotFound(invoiceID)
		}
		order, err := loadReferences(ctx, orderRepo, userRepo, storeRepo, in)
		if err != nil {
			return err
		}
		totals, err := aggregate(ctx, orderRepo, order)
		if err != nil {
			return err
		}

		current.OrderID = order.ID
		current.ClientID = order.ClientID
		current.UserID = in.UserID
		current.StoreID = in.StoreID
		current.GrossTotal = totals.Gross
		current.TaxTotal = totals.Tax
		current.DiscountTotal = totals.Discount
		current.NetTotal = totals.Net
		current.PaymentMethod = in.PaymentMethod
		current.Notes = in.Notes
		if in.Status != "" {
			current.Status = in.Status
		}
		if err := invoiceRepo.Update(ctx, current); err != nil {
			return err
		}
		inv = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	a.log.Info().Int64("invoice_id", inv.ID).Str("net_total", inv.NetTotal.StringFixed(2)).Msg("factura actualizada")
	return inv, nil
}

// GetInvoice obtiene una factura por ID.
func (a *InvoiceAggregator) GetInvoice(ctx context.Context, invoiceID int64) (*entity.Invoice, error) {
	if invoiceID <= 0 {
		return nil, domain.ErrInvalidID
	}
	inv, err := a.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.InvoiceNotFound(invoiceID)
	}
	return inv, nil
}

// ListInvoices lista facturas con paginación.
func (a *InvoiceAggregator) ListInvoices(ctx context.Context, limit, offset int) ([]*entity.Invoice, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}.Normalize()
	return a.invoiceRepo.List(ctx, page.Limit, page.Offset)
}

// DeleteInvoice elimina la factura y sus envíos.
func (a *InvoiceAggregator) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	if _, err := a.GetInvoice(ctx, invoiceID); err != nil {
		return err
	}
	return a.invoiceRepo.Delete(ctx, invoiceID)
}

// loadReferences verifica orden, usuario y tienda; devuelve la orden.
func loadReferences(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	storeRepo repository.StoreRepository,
	in IssueInvoiceInput,
) (*entity.Order, error) {
	order, err := orderRepo.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.OrderNotFound(in.OrderID)
	}
	user, err := userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.UserNotFound(in.UserID)
	}
	store, err := storeRepo.GetByID(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.StoreNotFound(in.StoreID)
	}
	return order, nil
}

// aggregate suma las líneas persistidas y las contrasta con el total de la orden.
func aggregate(ctx context.Context, orderRepo repository.OrderRepository, order *entity.Order) (pricing.Totals, error) {
	lines, err := orderRepo.ListLines(ctx, order.ID)
	if err != nil {
		return pricing.Totals{}, err
	}
	amounts := make([]pricing.LineAmounts, 0, len(lines))
	for _, l := range lines {
		amounts = append(amounts, pricing.LineAmounts{
			Subtotal:       l.Subtotal,
			TaxAmount:      l.TaxAmount,
			DiscountAmount: l.DiscountAmount,
			LineTotal:      l.LineTotal,
		})
	}
	raw := pricing.Sum(amounts)

	recomputed := raw.Gross.Add(raw.Tax).Sub(raw.Discount)
	if recomputed.Sub(order.Total).Abs().GreaterThan(totalsTolerance) {
		return pricing.Totals{}, fmt.Errorf("%w: orden %d total %s, líneas %s",
			domain.ErrInconsistentTotals, order.ID, order.Total.StringFixed(2), recomputed.StringFixed(4))
	}
	return raw.Rounded(), nil
}
