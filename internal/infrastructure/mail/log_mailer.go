package mail

import (
	"context"

	"github.com/jhoicas/ordenes-api/internal/application/ports"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

var _ ports.Mailer = (*LogMailer)(nil)

// LogMailer envío simulado: registra el correo en el log y no lo entrega.
// Se usa cuando no hay SENDGRID_API_KEY.
type LogMailer struct {
	log *logger.Logger
}

func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log.Named("mailer")}
}

func (m *LogMailer) Send(_ context.Context, msg ports.Email) error {
	names := make([]string, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		names = append(names, a.Filename)
	}
	m.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Strs("attachments", names).
		Msg("envío de correo simulado")
	return nil
}
