package billing

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/application/ports"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

// DispatchUseCase envía facturas por correo con el PDF adjunto y registra cada intento.
// Es best-effort: un fallo de entrega nunca modifica la factura.
type DispatchUseCase struct {
	pdf          *PDFUseCase
	dispatchRepo repository.InvoiceDispatchRepository
	mailer       ports.Mailer
	log          *logger.Logger
	now          func() time.Time
}

// NewDispatchUseCase construye el caso de uso.
func NewDispatchUseCase(pdf *PDFUseCase, dispatchRepo repository.InvoiceDispatchRepository, mailer ports.Mailer, log *logger.Logger) *DispatchUseCase {
	return &DispatchUseCase{
		pdf:          pdf,
		dispatchRepo: dispatchRepo,
		mailer:       mailer,
		log:          log.Named("dispatch"),
		now:          time.Now,
	}
}

// DispatchInvoice registra el envío, renderiza el PDF y lo envía al correo del cliente.
// Si la entrega falla devuelve el registro (entregado=false) junto a un error domain.ErrDeliveryFailed.
func (uc *DispatchUseCase) DispatchInvoice(ctx context.Context, invoiceID int64, status string) (*entity.InvoiceDispatch, error) {
	if status == "" {
		return nil, domain.NewValidation("estado", "es obligatorio")
	}
	doc, err := uc.pdf.LoadDocument(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	d := &entity.InvoiceDispatch{
		InvoiceID: invoiceID,
		Status:    status,
		Channel:   entity.DispatchChannelEmail,
		Recipient: doc.Client.Email,
		SentAt:    uc.now(),
	}
	if err := uc.dispatchRepo.Create(ctx, d); err != nil {
		return nil, err
	}

	deliveryErr := uc.deliver(ctx, *doc)
	if deliveryErr != nil {
		d.DeliveryError = deliveryErr.Error()
	} else {
		d.Delivered = true
	}
	if err := uc.dispatchRepo.Update(ctx, d); err != nil {
		uc.log.Error().Err(err).Int64("dispatch_id", d.ID).Msg("no se pudo actualizar el registro de envío")
	}

	if deliveryErr != nil {
		uc.log.Warn().Err(deliveryErr).Int64("invoice_id", invoiceID).Int64("dispatch_id", d.ID).
			Str("recipient", d.Recipient).Msg("envío de factura fallido")
		return d, fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, deliveryErr)
	}
	uc.log.Info().Int64("invoice_id", invoiceID).Int64("dispatch_id", d.ID).
		Str("recipient", d.Recipient).Msg("factura enviada")
	return d, nil
}

// deliver renderiza el PDF y, solo después, llama explícitamente al mailer.
func (uc *DispatchUseCase) deliver(ctx context.Context, doc InvoiceDocument) error {
	if doc.Client.Email == "" {
		return fmt.Errorf("el cliente %d no tiene correo registrado", doc.Client.ID)
	}
	pdfBytes, err := uc.pdf.Render(ctx, doc)
	if err != nil {
		return err
	}
	return uc.mailer.Send(ctx, invoiceEmail(doc, pdfBytes))
}

func invoiceEmail(doc InvoiceDocument, pdfBytes []byte) ports.Email {
	inv := doc.Invoice
	subject := fmt.Sprintf("Factura N° %d - %s", inv.ID, doc.Store.Name)
	body := fmt.Sprintf("Hola %s,\n\nAdjuntamos la factura N° %d de %s por un total de $%s.\n\nGracias por su compra.",
		doc.Client.FullName(), inv.ID, doc.Store.Name, inv.NetTotal.StringFixed(2))
	htmlBody := fmt.Sprintf("<p>Hola %s,</p><p>Adjuntamos la factura N° %d de <strong>%s</strong> por un total de <strong>$%s</strong>.</p><p>Gracias por su compra.</p>",
		html.EscapeString(doc.Client.FullName()), inv.ID, html.EscapeString(doc.Store.Name), inv.NetTotal.StringFixed(2))
	return ports.Email{
		To:      doc.Client.Email,
		ToName:  doc.Client.FullName(),
		Subject: subject,
		Text:    body,
		HTML:    htmlBody,
		Attachments: []ports.Attachment{{
			Filename:    InvoiceFilename(inv.ID),
			ContentType: "application/pdf",
			Content:     pdfBytes,
		}},
	}
}

// ListDispatches lista envíos con paginación.
func (uc *DispatchUseCase) ListDispatches(ctx context.Context, limit, offset int) ([]*entity.InvoiceDispatch, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}.Normalize()
	return uc.dispatchRepo.List(ctx, page.Limit, page.Offset)
}

// GetDispatch obtiene un envío por ID.
func (uc *DispatchUseCase) GetDispatch(ctx context.Context, id int64) (*entity.InvoiceDispatch, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	d, err := uc.dispatchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.DispatchNotFound(id)
	}
	return d, nil
}

// UpdateDispatchStatus cambia solo la etiqueta de estado.
func (uc *DispatchUseCase) UpdateDispatchStatus(ctx context.Context, id int64, status string) (*entity.InvoiceDispatch, error) {
	if status == "" {
		return nil, domain.NewValidation("estado", "es obligatorio")
	}
	d, err := uc.GetDispatch(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Status = status
	if err := uc.dispatchRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// DeleteDispatch elimina un registro de envío.
func (uc *DispatchUseCase) DeleteDispatch(ctx context.Context, id int64) error {
	if _, err := uc.GetDispatch(ctx, id); err != nil {
		return err
	}
	return uc.dispatchRepo.Delete(ctx, id)
}
