package sms

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/ordenes-api/internal/application/ports"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

var _ ports.SMSSender = (*LogSender)(nil)

// LogSender envío simulado de SMS; devuelve un SID local con prefijo "SIM".
type LogSender struct {
	log *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log.Named("sms")}
}

func (s *LogSender) SendSMS(_ context.Context, to, body string) (string, error) {
	sid := "SIM" + uuid.NewString()
	s.log.Info().Str("to", to).Int("length", len(body)).Str("sid", sid).Msg("envío de SMS simulado")
	return sid, nil
}
