// Package mail implementa el puerto ports.Mailer sobre SendGrid v3.
package mail

import (
	"context"
	"encoding/base64"
	"fmt"

	sendgrid "github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/jhoicas/ordenes-api/internal/application/ports"
	"github.com/jhoicas/ordenes-api/pkg/config"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

const mailSendPath = "/v3/mail/send"

var _ ports.Mailer = (*SendGridMailer)(nil)

// SendGridMailer envía correos con la API v3 de SendGrid.
type SendGridMailer struct {
	apiKey   string
	baseURL  string
	from     string
	fromName string
	log      *logger.Logger
}

// NewSendGridMailer construye el adaptador con las credenciales de configuración.
func NewSendGridMailer(cfg config.SendGridConfig, log *logger.Logger) *SendGridMailer {
	return &SendGridMailer{
		apiKey:   cfg.APIKey,
		baseURL:  cfg.BaseURL,
		from:     cfg.From,
		fromName: cfg.FromName,
		log:      log.Named("sendgrid"),
	}
}

// Send arma el mensaje v3 y lo envía con reintentos. Un status >= 300 se considera fallo.
func (s *SendGridMailer) Send(ctx context.Context, msg ports.Email) error {
	m := sgmail.NewV3Mail()
	m.SetFrom(sgmail.NewEmail(s.fromName, s.from))
	m.Subject = msg.Subject

	personalization := sgmail.NewPersonalization()
	personalization.AddTos(sgmail.NewEmail(msg.ToName, msg.To))
	m.AddPersonalizations(personalization)

	m.AddContent(sgmail.NewContent("text/plain", msg.Text))
	if msg.HTML != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}

	for _, att := range msg.Attachments {
		a := sgmail.NewAttachment()
		a.SetContent(base64.StdEncoding.EncodeToString(att.Content))
		a.SetType(att.ContentType)
		a.SetFilename(att.Filename)
		a.SetDisposition("attachment")
		m.AddAttachment(a)
	}

	request := sendgrid.GetRequest(s.apiKey, mailSendPath, s.baseURL)
	request.Method = "POST"
	request.Body = sgmail.GetRequestBody(m)

	response, err := sendgrid.MakeRequestRetryWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if response.StatusCode >= 300 {
		s.log.Warn().Int("status", response.StatusCode).Str("body", response.Body).Msg("sendgrid rechazó el correo")
		return fmt.Errorf("sendgrid: status %d", response.StatusCode)
	}

	s.log.Debug().Str("to", msg.To).Int("status", response.StatusCode).Msg("correo enviado")
	return nil
}
