package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordenes-api/internal/application/ports"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

type mockMailer struct{ mock.Mock }

func (m *mockMailer) Send(ctx context.Context, msg ports.Email) error {
	return m.Called(ctx, msg).Error(0)
}

type mockSMS struct{ mock.Mock }

func (m *mockSMS) SendSMS(ctx context.Context, to, body string) (string, error) {
	args := m.Called(ctx, to, body)
	return args.String(0), args.Error(1)
}

func TestSendEmail(t *testing.T) {
	mailer := &mockMailer{}
	uc := NewUseCase(mailer, &mockSMS{}, logger.Nop())
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(e ports.Email) bool {
		return e.To == "ana@example.com" && e.Subject == "Hola" && e.HTML == "<p>a &lt;b&gt;<br>c</p>"
	})).Return(nil).Once()

	require.NoError(t, uc.SendEmail(context.Background(), "ana@example.com", "Hola", "a <b>\nc"))
	mailer.AssertExpectations(t)
}

func TestSendEmail_FalloDelProveedor(t *testing.T) {
	mailer := &mockMailer{}
	mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("401"))
	uc := NewUseCase(mailer, &mockSMS{}, logger.Nop())

	err := uc.SendEmail(context.Background(), "ana@example.com", "Hola", "x")
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
}

func TestSendEmail_SinMensaje(t *testing.T) {
	mailer := &mockMailer{}
	uc := NewUseCase(mailer, &mockSMS{}, logger.Nop())
	err := uc.SendEmail(context.Background(), "ana@example.com", "Hola", "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendSMS(t *testing.T) {
	sms := &mockSMS{}
	sms.On("SendSMS", mock.Anything, "+573001234567", "Su pedido va en camino").Return("SM123", nil).Once()
	uc := NewUseCase(&mockMailer{}, sms, logger.Nop())

	sid, err := uc.SendSMS(context.Background(), "+573001234567", "Su pedido va en camino")
	require.NoError(t, err)
	assert.Equal(t, "SM123", sid)
	sms.AssertExpectations(t)
}

func TestSendSMS_Fallo(t *testing.T) {
	sms := &mockSMS{}
	sms.On("SendSMS", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("21211 invalid 'To'"))
	uc := NewUseCase(&mockMailer{}, sms, logger.Nop())

	_, err := uc.SendSMS(context.Background(), "+1", "x")
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
}
