// Package notification expone el envío directo de correos y SMS.
package notification

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/jhoicas/ordenes-api/internal/application/ports"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

// UseCase casos de uso de notificaciones.
type UseCase struct {
	mailer ports.Mailer
	sms    ports.SMSSender
	log    *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(mailer ports.Mailer, sms ports.SMSSender, log *logger.Logger) *UseCase {
	return &UseCase{mailer: mailer, sms: sms, log: log.Named("notification")}
}

// SendEmail envía un correo de texto plano (con su versión HTML escapada).
func (uc *UseCase) SendEmail(ctx context.Context, to, subject, message string) error {
	if strings.TrimSpace(to) == "" {
		return domain.NewValidation("destinatario", "es obligatorio")
	}
	if strings.TrimSpace(message) == "" {
		return domain.NewValidation("mensaje", "es obligatorio")
	}
	err := uc.mailer.Send(ctx, ports.Email{
		To:      to,
		Subject: subject,
		Text:    message,
		HTML:    "<p>" + strings.ReplaceAll(html.EscapeString(message), "\n", "<br>") + "</p>",
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("to", to).Msg("correo no enviado")
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	uc.log.Info().Str("to", to).Msg("correo enviado")
	return nil
}

// SendSMS envía un SMS y devuelve el identificador del proveedor.
func (uc *UseCase) SendSMS(ctx context.Context, to, message string) (string, error) {
	if strings.TrimSpace(to) == "" {
		return "", domain.NewValidation("destinatario", "es obligatorio")
	}
	if strings.TrimSpace(message) == "" {
		return "", domain.NewValidation("mensaje", "es obligatorio")
	}
	sid, err := uc.sms.SendSMS(ctx, to, message)
	if err != nil {
		uc.log.Warn().Err(err).Str("to", to).Msg("SMS no enviado")
		return "", fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	uc.log.Info().Str("to", to).Str("sid", sid).Msg("SMS enviado")
	return sid, nil
}
