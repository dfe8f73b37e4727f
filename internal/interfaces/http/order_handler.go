package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/application/ordering"
	"github.com/jhoicas/ordenes-api/internal/application/validation"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
)

// OrderHandler maneja las peticiones HTTP de órdenes.
type OrderHandler struct {
	manager  *ordering.OrderManager
	validate *validation.Validator
}

// NewOrderHandler construye el handler.
func NewOrderHandler(manager *ordering.OrderManager) *OrderHandler {
	return &OrderHandler{manager: manager, validate: validation.New()}
}

// Create godoc
// @Summary      Crear orden
// @Description  Tarifa cada línea y persiste cabecera y detalle en una sola transacción.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderRequest  true  "Cliente, estado y detalle"
// @Success      201   {object}  dto.OrderCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	in, err := h.parse(c)
	if err != nil {
		return err
	}
	order, err := h.manager.CreateOrder(c.UserContext(), in.ClientID, in.Status, toLineInputs(in.Lines))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OrderCreatedResponse{
		Message: "orden creada exitosamente",
		OrderID: order.ID,
	})
}

// Update godoc
// @Summary      Reemplazar orden
// @Description  Reemplaza por completo las líneas de la orden y recalcula su total.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la orden"
// @Param        body  body  dto.OrderRequest  true  "Cliente, estado y detalle"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	in, err := h.parse(c)
	if err != nil {
		return err
	}
	if _, err := h.manager.UpdateOrder(c.UserContext(), id, in.ClientID, in.Status, toLineInputs(in.Lines)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "orden actualizada exitosamente"})
}

// GetByID godoc
// @Summary      Obtener orden con su detalle
// @Tags         orders
// @Produce      json
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	order, err := h.manager.GetOrder(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toOrderResponse(order))
}

// List godoc
// @Summary      Listar órdenes
// @Tags         orders
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	orders, err := h.manager.ListOrders(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderResponse(o))
	}
	return c.JSON(dto.OrderListResponse{Items: items, Page: page})
}

// Delete godoc
// @Summary      Eliminar orden
// @Tags         orders
// @Produce      json
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.manager.DeleteOrder(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "orden eliminada exitosamente"})
}

func (h *OrderHandler) parse(c *fiber.Ctx) (*dto.OrderRequest, error) {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, errInvalidBody
	}
	if err := h.validate.Struct(in); err != nil {
		return nil, err
	}
	return &in, nil
}

func toLineInputs(lines []dto.OrderLineRequest) []ordering.LineInput {
	out := make([]ordering.LineInput, 0, len(lines))
	for _, l := range lines {
		out = append(out, ordering.LineInput{
			ProductID:       l.ProductID,
			Quantity:        l.Quantity,
			DiscountPercent: l.Discount,
		})
	}
	return out
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	out := dto.OrderResponse{
		ID:        o.ID,
		ClientID:  o.ClientID,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
	for _, l := range o.Lines {
		out.Lines = append(out.Lines, dto.OrderLineResponse{
			ID:              l.ID,
			ProductID:       l.ProductID,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			TaxRate:         l.TaxRate,
			DiscountPercent: l.DiscountPercent,
			Subtotal:        l.Subtotal,
			TaxAmount:       l.TaxAmount,
			DiscountAmount:  l.DiscountAmount,
			LineTotal:       l.LineTotal,
		})
	}
	return out
}
