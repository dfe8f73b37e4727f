package billing

import (
	"context"

	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// InvoiceTxRunner ejecuta una función dentro de una transacción con los repos de facturación.
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		userRepo repository.UserRepository,
		storeRepo repository.StoreRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoiceLineForPDF línea de la orden enriquecida con el nombre del producto.
type InvoiceLineForPDF struct {
	entity.OrderLine
	ProductName string
}

// InvoiceDocument todo lo necesario para la representación gráfica de una factura.
type InvoiceDocument struct {
	Invoice *entity.Invoice
	Client  *entity.Client
	Store   *entity.Store
	Lines   []InvoiceLineForPDF
}

// InvoicePDFGenerator renderiza la factura a PDF en memoria.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc InvoiceDocument) ([]byte, error)
}
