package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ordenes-api/internal/application/billing"
	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/application/validation"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
)

// DispatchHandler maneja los envíos de factura por correo.
type DispatchHandler struct {
	uc       *billing.DispatchUseCase
	validate *validation.Validator
}

func NewDispatchHandler(uc *billing.DispatchUseCase) *DispatchHandler {
	return &DispatchHandler{uc: uc, validate: validation.New()}
}

// Create godoc
// @Summary      Enviar factura al cliente
// @Description  Registra el envío, genera el PDF y lo envía adjunto por correo.
// @Tags         invoice-dispatches
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DispatchRequest  true  "Factura y estado"
// @Success      201   {object}  dto.DispatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.DispatchFailedResponse
// @Router       /api/invoice-dispatches [post]
func (h *DispatchHandler) Create(c *fiber.Ctx) error {
	var in dto.DispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return errInvalidBody
	}
	if err := h.validate.Struct(in); err != nil {
		return err
	}
	d, err := h.uc.DispatchInvoice(c.UserContext(), in.InvoiceID, in.Status)
	if err != nil {
		if errors.Is(err, domain.ErrDeliveryFailed) && d != nil {
			return c.Status(fiber.StatusBadGateway).JSON(dto.DispatchFailedResponse{
				Error:    err.Error(),
				Dispatch: toDispatchResponse(d),
			})
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toDispatchResponse(d))
}

// List godoc
// @Summary      Listar envíos de factura
// @Tags         invoice-dispatches
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}   dto.DispatchResponse
// @Router       /api/invoice-dispatches [get]
func (h *DispatchHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	list, err := h.uc.ListDispatches(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return err
	}
	out := make([]dto.DispatchResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDispatchResponse(d))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener envío de factura
// @Tags         invoice-dispatches
// @Produce      json
// @Param        id   path  int  true  "ID del envío"
// @Success      200  {object}  dto.DispatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoice-dispatches/{id} [get]
func (h *DispatchHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	d, err := h.uc.GetDispatch(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toDispatchResponse(d))
}

// Update godoc
// @Summary      Actualizar estado del envío
// @Tags         invoice-dispatches
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del envío"
// @Param        body  body  dto.UpdateDispatchRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.DispatchResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoice-dispatches/{id} [put]
func (h *DispatchHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in dto.UpdateDispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return errInvalidBody
	}
	if err := h.validate.Struct(in); err != nil {
		return err
	}
	d, err := h.uc.UpdateDispatchStatus(c.UserContext(), id, in.Status)
	if err != nil {
		return err
	}
	return c.JSON(toDispatchResponse(d))
}

// Delete godoc
// @Summary      Eliminar envío de factura
// @Tags         invoice-dispatches
// @Produce      json
// @Param        id   path  int  true  "ID del envío"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoice-dispatches/{id} [delete]
func (h *DispatchHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.uc.DeleteDispatch(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "envío eliminado exitosamente"})
}

func toDispatchResponse(d *entity.InvoiceDispatch) dto.DispatchResponse {
	return dto.DispatchResponse{
		ID:            d.ID,
		InvoiceID:     d.InvoiceID,
		Status:        d.Status,
		Channel:       d.Channel,
		Recipient:     d.Recipient,
		Delivered:     d.Delivered,
		DeliveryError: d.DeliveryError,
		SentAt:        d.SentAt,
	}
}
