// Package ordering contiene el motor transaccional de órdenes: valida, tarifa y persiste
// la cabecera y sus líneas en una sola unidad de trabajo.
package ordering

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/pricing"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

// LineInput línea propuesta por el llamador.
type LineInput struct {
	ProductID       int64
	Quantity        int
	DiscountPercent decimal.Decimal
}

// OrderManager casos de uso de órdenes.
type OrderManager struct {
	txRunner  OrderTxRunner
	orderRepo repository.OrderRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewOrderManager construye el caso de uso. orderRepo se usa solo para lecturas fuera de transacción.
func NewOrderManager(txRunner OrderTxRunner, orderRepo repository.OrderRepository, log *logger.Logger) *OrderManager {
	return &OrderManager{
		txRunner:  txRunner,
		orderRepo: orderRepo,
		log:       log.Named("ordering"),
		now:       time.Now,
	}
}

// CreateOrder crea la orden con sus líneas tarifadas. Todo o nada.
func (m *OrderManager) CreateOrder(ctx context.Context, clientID int64, status string, lines []LineInput) (*entity.Order, error) {
	if err := validateLines(clientID, lines); err != nil {
		return nil, err
	}
	if status == "" {
		status = entity.OrderStatusPending
	}

	var order *entity.Order
	err := m.txRunner.RunOrder(ctx, func(
		clientRepo repository.ClientRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		if err := ensureClient(ctx, clientRepo, clientID); err != nil {
			return err
		}

		// Cabecera con total 0 para obtener el ID.
		o := &entity.Order{
			ClientID:  clientID,
			Total:     decimal.Zero,
			Status:    status,
			CreatedAt: m.now(),
		}
		if err := orderRepo.Create(ctx, o); err != nil {
			return err
		}

		priced, total, err := priceAndPersistLines(ctx, productRepo, orderRepo, o.ID, lines)
		if err != nil {
			return err
		}
		o.Total = total
		o.Lines = priced
		if err := orderRepo.Update(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.log.Info().Int64("order_id", order.ID).Int64("client_id", clientID).
		Int("lines", len(order.Lines)).Str("total", order.Total.StringFixed(2)).Msg("orden creada")
	return order, nil
}

// UpdateOrder reemplaza por completo las líneas de la orden y recalcula el total.
func (m *OrderManager) UpdateOrder(ctx context.Context, orderID, clientID int64, status string, lines []LineInput) (*entity.Order, error) {
	if orderID <= 0 {
		return nil, domain.ErrInvalidID
	}
	if err := validateLines(clientID, lines); err != nil {
		return nil, err
	}
	if status == "" {
		status = entity.OrderStatusProcessing
	}

	var order *entity.Order
	err := m.txRunner.RunOrder(ctx, func(
		clientRepo repository.ClientRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		if err := ensureClient(ctx, clientRepo, clientID); err != nil {
			return err
		}
		o, err := orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.OrderNotFound(orderID)
		}

		if err := orderRepo.DeleteLines(ctx, orderID); err != nil {
			return err
		}
		priced, total, err := priceAndPersistLines(ctx, productRepo, orderRepo, orderID, lines)
		if err != nil {
			return err
		}
		o.ClientID = clientID
		o.Total = total
		o.Status = status
		o.Lines = priced
		if err := orderRepo.Update(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.log.Info().Int64("order_id", orderID).Int("lines", len(order.Lines)).
		Str("total", order.Total.StringFixed(2)).Msg("orden actualizada")
	return order, nil
}

// DeleteOrder elimina las líneas y luego la cabecera. Una orden facturada no se puede eliminar.
func (m *OrderManager) DeleteOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return domain.ErrInvalidID
	}
	return m.txRunner.RunOrder(ctx, func(
		_ repository.ClientRepository,
		_ repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		o, err := orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.OrderNotFound(orderID)
		}
		invoiced, err := orderRepo.HasInvoices(ctx, orderID)
		if err != nil {
			return err
		}
		if invoiced {
			return domain.ErrOrderInvoiced
		}
		if err := orderRepo.DeleteLines(ctx, orderID); err != nil {
			return err
		}
		return orderRepo.Delete(ctx, orderID)
	})
}

// GetOrder devuelve la orden con sus líneas.
func (m *OrderManager) GetOrder(ctx context.Context, orderID int64) (*entity.Order, error) {
	if orderID <= 0 {
		return nil, domain.ErrInvalidID
	}
	o, err := m.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.OrderNotFound(orderID)
	}
	lines, err := m.orderRepo.ListLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return o, nil
}

// ListOrders lista cabeceras con paginación.
func (m *OrderManager) ListOrders(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}.Normalize()
	return m.orderRepo.List(ctx, page.Limit, page.Offset)
}

// validateLines rechaza la entrada antes de abrir la transacción.
func validateLines(clientID int64, lines []LineInput) error {
	if clientID <= 0 {
		return domain.NewValidation("id_cliente", "es obligatorio")
	}
	if len(lines) == 0 {
		return domain.ErrEmptyOrder
	}
	for _, l := range lines {
		if l.ProductID <= 0 {
			return domain.NewValidation("id_producto", "es obligatorio")
		}
		if l.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}
		if err := pricing.ValidateDiscount(l.DiscountPercent); err != nil {
			return err
		}
	}
	return nil
}

func ensureClient(ctx context.Context, repo repository.ClientRepository, clientID int64) error {
	c, err := repo.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ClientNotFound(clientID)
	}
	return nil
}

// priceAndPersistLines tarifa y persiste cada línea en el orden recibido.
// Devuelve las líneas y el total redondeado a 2 decimales.
func priceAndPersistLines(
	ctx context.Context,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	orderID int64,
	lines []LineInput,
) ([]*entity.OrderLine, decimal.Decimal, error) {
	out := make([]*entity.OrderLine, 0, len(lines))
	var totals pricing.Totals
	for _, in := range lines {
		product, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if product == nil {
			return nil, decimal.Zero, domain.ProductNotFound(in.ProductID)
		}
		if in.Quantity > product.Stock {
			return nil, decimal.Zero, &domain.StockError{
				ProductID: product.ID,
				Requested: in.Quantity,
				Available: product.Stock,
			}
		}

		amounts, err := pricing.CalculateLine(product.Price, in.Quantity, product.TaxRate, in.DiscountPercent)
		if err != nil {
			return nil, decimal.Zero, err
		}
		line := &entity.OrderLine{
			OrderID:         orderID,
			ProductID:       product.ID,
			Quantity:        in.Quantity,
			UnitPrice:       product.Price,
			TaxRate:         product.TaxRate,
			DiscountPercent: in.DiscountPercent,
			Subtotal:        amounts.Subtotal,
			TaxAmount:       amounts.TaxAmount,
			DiscountAmount:  amounts.DiscountAmount,
			LineTotal:       amounts.LineTotal,
		}
		if err := orderRepo.CreateLine(ctx, line); err != nil {
			return nil, decimal.Zero, err
		}
		out = append(out, line)
		totals = totals.Add(amounts)
	}
	return out, pricing.RoundCurrency(totals.Net), nil
}
