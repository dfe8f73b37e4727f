package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ordenes-api/internal/application/billing"
	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/application/validation"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
)

// InvoiceHandler maneja las peticiones HTTP de facturación.
type InvoiceHandler struct {
	aggregator *billing.InvoiceAggregator
	pdf        *billing.PDFUseCase
	validate   *validation.Validator
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(aggregator *billing.InvoiceAggregator, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{aggregator: aggregator, pdf: pdf, validate: validation.New()}
}

// Create godoc
// @Summary      Emitir factura
// @Description  Deriva los totales de las líneas persistidas de la orden.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceRequest  true  "Orden, usuario y tienda"
// @Success      201   {object}  dto.InvoiceCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	in, err := h.parse(c)
	if err != nil {
		return err
	}
	inv, err := h.aggregator.IssueInvoice(c.UserContext(), toIssueInput(in))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InvoiceCreatedResponse{
		Message:   "factura creada exitosamente",
		InvoiceID: inv.ID,
	})
}

// Update godoc
// @Summary      Reemitir factura
// @Description  Vuelve a calcular todos los totales desde las líneas de la orden.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la factura"
// @Param        body  body  dto.InvoiceRequest  true  "Orden, usuario y tienda"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	in, err := h.parse(c)
	if err != nil {
		return err
	}
	inv, err := h.aggregator.UpdateInvoice(c.UserContext(), id, toIssueInput(in))
	if err != nil {
		return err
	}
	return c.JSON(toInvoiceResponse(inv))
}

// GetByID godoc
// @Summary      Obtener factura
// @Tags         invoices
// @Produce      json
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	inv, err := h.aggregator.GetInvoice(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toInvoiceResponse(inv))
}

// List godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	list, err := h.aggregator.ListInvoices(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, toInvoiceResponse(inv))
	}
	return c.JSON(dto.InvoiceListResponse{Items: items, Page: page})
}

// Delete godoc
// @Summary      Eliminar factura
// @Description  Elimina la factura junto con sus registros de envío.
// @Tags         invoices
// @Produce      json
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.aggregator.DeleteInvoice(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "factura eliminada exitosamente"})
}

// DownloadPDF godoc
// @Summary      Descargar PDF de la factura
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.UserContext(), id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

func (h *InvoiceHandler) parse(c *fiber.Ctx) (*dto.InvoiceRequest, error) {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, errInvalidBody
	}
	if err := h.validate.Struct(in); err != nil {
		return nil, err
	}
	return &in, nil
}

func toIssueInput(in *dto.InvoiceRequest) billing.IssueInvoiceInput {
	return billing.IssueInvoiceInput{
		OrderID:       in.OrderID,
		UserID:        in.UserID,
		StoreID:       in.StoreID,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		Status:        in.Status,
	}
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:            inv.ID,
		OrderID:       inv.OrderID,
		ClientID:      inv.ClientID,
		UserID:        inv.UserID,
		StoreID:       inv.StoreID,
		GrossTotal:    inv.GrossTotal,
		TaxTotal:      inv.TaxTotal,
		DiscountTotal: inv.DiscountTotal,
		NetTotal:      inv.NetTotal,
		Status:        inv.Status,
		PaymentMethod: inv.PaymentMethod,
		Notes:         inv.Notes,
		IssuedAt:      inv.IssuedAt,
	}
}
