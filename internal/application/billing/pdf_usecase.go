package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	orderRepo   repository.OrderRepository
	clientRepo  repository.ClientRepository
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		storeRepo:   storeRepo,
		productRepo: productRepo,
		generator:   generator,
	}
}

// DownloadInvoicePDF carga la factura y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - *domain.NotFoundError      si la factura, su cliente o su tienda no existen.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID int64) (pdfBytes []byte, filename string, err error) {
	doc, err := uc.LoadDocument(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.Render(ctx, *doc)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, InvoiceFilename(invoiceID), nil
}

// LoadDocument reúne factura, cliente, tienda y líneas con nombre de producto.
func (uc *PDFUseCase) LoadDocument(ctx context.Context, invoiceID int64) (*InvoiceDocument, error) {
	if invoiceID <= 0 {
		return nil, domain.ErrInvalidID
	}

	// ── 1. Factura ────────────────────────────────────────────────────────────
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.InvoiceNotFound(invoiceID)
	}

	// ── 2. Cliente y tienda ───────────────────────────────────────────────────
	client, err := uc.clientRepo.GetByID(ctx, inv.ClientID)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if client == nil {
		return nil, domain.ClientNotFound(inv.ClientID)
	}
	store, err := uc.storeRepo.GetByID(ctx, inv.StoreID)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener tienda: %w", err)
	}
	if store == nil {
		return nil, domain.StoreNotFound(inv.StoreID)
	}

	// ── 3. Líneas + nombre de producto ────────────────────────────────────────
	lines, err := uc.orderRepo.ListLines(ctx, inv.OrderID)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener líneas: %w", err)
	}
	enriched := make([]InvoiceLineForPDF, 0, len(lines))
	for _, l := range lines {
		name := fmt.Sprintf("Producto %d", l.ProductID) // fallback
		if product, pErr := uc.productRepo.GetByID(ctx, l.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		enriched = append(enriched, InvoiceLineForPDF{OrderLine: *l, ProductName: name})
	}

	return &InvoiceDocument{Invoice: inv, Client: client, Store: store, Lines: enriched}, nil
}

// Render genera el PDF de un documento ya cargado.
func (uc *PDFUseCase) Render(ctx context.Context, doc InvoiceDocument) ([]byte, error) {
	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, nil
}

// InvoiceFilename nombre de archivo del PDF de una factura.
func InvoiceFilename(invoiceID int64) string {
	return fmt.Sprintf("factura_%06d.pdf", invoiceID)
}
