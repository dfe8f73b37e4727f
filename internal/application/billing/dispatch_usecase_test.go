package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordenes-api/internal/application/billing"
	"github.com/jhoicas/ordenes-api/internal/application/ports"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

type mockMailer struct{ mock.Mock }

func (m *mockMailer) Send(ctx context.Context, msg ports.Email) error {
	return m.Called(ctx, msg).Error(0)
}

type mockGenerator struct{ mock.Mock }

func (m *mockGenerator) GenerateInvoicePDF(ctx context.Context, doc billing.InvoiceDocument) ([]byte, error) {
	args := m.Called(ctx, doc)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

type dispatchFixture struct {
	*fixture
	invoice   *entity.Invoice
	mailer    *mockMailer
	generator *mockGenerator
	uc        *billing.DispatchUseCase
	pdf       *billing.PDFUseCase
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	t.Helper()
	f := newFixture(t)
	inv, err := f.aggregator.IssueInvoice(context.Background(), f.input())
	require.NoError(t, err)

	mailer := &mockMailer{}
	gen := &mockGenerator{}
	st := f.store
	pdf := billing.NewPDFUseCase(st.Invoices(), st.Orders(), st.Clients(), st.Stores(), st.Products(), gen)
	return &dispatchFixture{
		fixture:   f,
		invoice:   inv,
		mailer:    mailer,
		generator: gen,
		pdf:       pdf,
		uc:        billing.NewDispatchUseCase(pdf, st.Dispatches(), mailer, logger.Nop()),
	}
}

func TestDispatchInvoice_Entregado(t *testing.T) {
	f := newDispatchFixture(t)
	pdfBytes := []byte("%PDF-1.3 factura")
	f.generator.On("GenerateInvoicePDF", mock.Anything, mock.MatchedBy(func(doc billing.InvoiceDocument) bool {
		return doc.Invoice.ID == f.invoice.ID && len(doc.Lines) == 2 && doc.Lines[0].ProductName == "Café"
	})).Return(pdfBytes, nil).Once()
	f.mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg ports.Email) bool {
		return msg.To == "ana@example.com" &&
			len(msg.Attachments) == 1 &&
			string(msg.Attachments[0].Content) == string(pdfBytes) &&
			msg.Attachments[0].ContentType == "application/pdf"
	})).Return(nil).Once()

	d, err := f.uc.DispatchInvoice(context.Background(), f.invoice.ID, "enviada")
	require.NoError(t, err)
	assert.True(t, d.Delivered)
	assert.Equal(t, "enviada", d.Status)
	assert.Equal(t, entity.DispatchChannelEmail, d.Channel)
	assert.Equal(t, "ana@example.com", d.Recipient)

	stored, err := f.uc.GetDispatch(context.Background(), d.ID)
	require.NoError(t, err)
	assert.True(t, stored.Delivered)

	f.generator.AssertExpectations(t)
	f.mailer.AssertExpectations(t)
}

func TestDispatchInvoice_FalloDeCorreoNoTocaLaFactura(t *testing.T) {
	f := newDispatchFixture(t)
	f.generator.On("GenerateInvoicePDF", mock.Anything, mock.Anything).Return([]byte("%PDF"), nil)
	f.mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("sendgrid: 503"))

	d, err := f.uc.DispatchInvoice(context.Background(), f.invoice.ID, "enviada")
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	require.NotNil(t, d)
	assert.False(t, d.Delivered)
	assert.Contains(t, d.DeliveryError, "sendgrid: 503")

	stored, err := f.uc.GetDispatch(context.Background(), d.ID)
	require.NoError(t, err)
	assert.False(t, stored.Delivered)

	inv, err := f.aggregator.GetInvoice(context.Background(), f.invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, f.invoice.Status, inv.Status)
	assert.True(t, inv.NetTotal.Equal(f.invoice.NetTotal))
}

func TestDispatchInvoice_FalloDeRenderNoEnviaCorreo(t *testing.T) {
	f := newDispatchFixture(t)
	f.generator.On("GenerateInvoicePDF", mock.Anything, mock.Anything).Return(nil, errors.New("fuente no disponible"))

	d, err := f.uc.DispatchInvoice(context.Background(), f.invoice.ID, "enviada")
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	require.NotNil(t, d)
	assert.False(t, d.Delivered)
	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatchInvoice_FacturaInexistente(t *testing.T) {
	f := newDispatchFixture(t)
	d, err := f.uc.DispatchInvoice(context.Background(), 999, "enviada")
	assert.Nil(t, d)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := f.uc.ListDispatches(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDispatchCRUD(t *testing.T) {
	f := newDispatchFixture(t)
	ctx := context.Background()
	f.generator.On("GenerateInvoicePDF", mock.Anything, mock.Anything).Return([]byte("%PDF"), nil)
	f.mailer.On("Send", mock.Anything, mock.Anything).Return(nil)

	d, err := f.uc.DispatchInvoice(ctx, f.invoice.ID, "enviada")
	require.NoError(t, err)

	upd, err := f.uc.UpdateDispatchStatus(ctx, d.ID, "reenviada")
	require.NoError(t, err)
	assert.Equal(t, "reenviada", upd.Status)

	_, err = f.uc.UpdateDispatchStatus(ctx, d.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, f.uc.DeleteDispatch(ctx, d.ID))
	_, err = f.uc.GetDispatch(ctx, d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadInvoicePDF(t *testing.T) {
	f := newDispatchFixture(t)
	f.generator.On("GenerateInvoicePDF", mock.Anything, mock.Anything).Return([]byte("%PDF"), nil)

	b, name, err := f.pdf.DownloadInvoicePDF(context.Background(), f.invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), b)
	assert.Equal(t, billing.InvoiceFilename(f.invoice.ID), name)
}

func TestDispatchInvoice_EscapaNombresEnHTML(t *testing.T) {
	f := newDispatchFixture(t)
	ctx := context.Background()
	f.client.FirstName = `<a href="http://x">Ana</a>`
	require.NoError(t, f.store.Clients().Update(ctx, f.client))
	f.shop.Name = "<b>Centro</b>"
	require.NoError(t, f.store.Stores().Update(ctx, f.shop))

	f.generator.On("GenerateInvoicePDF", mock.Anything, mock.Anything).Return([]byte("%PDF"), nil).Once()
	var sent ports.Email
	f.mailer.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(ports.Email)
	}).Return(nil).Once()

	_, err := f.uc.DispatchInvoice(ctx, f.invoice.ID, "enviada")
	require.NoError(t, err)

	assert.Contains(t, sent.HTML, "&lt;a href=&#34;http://x&#34;&gt;Ana&lt;/a&gt;")
	assert.Contains(t, sent.HTML, "&lt;b&gt;Centro&lt;/b&gt;")
	assert.NotContains(t, sent.HTML, "<a href")
	assert.NotContains(t, sent.HTML, "<b>Centro")
	f.mailer.AssertExpectations(t)
}
