// Package sms implementa el puerto ports.SMSSender sobre la API REST de Twilio.
package sms

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/ordenes-api/internal/application/ports"
	"github.com/jhoicas/ordenes-api/pkg/config"
	"github.com/jhoicas/ordenes-api/pkg/logger"
)

var _ ports.SMSSender = (*TwilioClient)(nil)

// twilioMessage respuesta de POST /Messages.json (solo los campos usados).
type twilioMessage struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// TwilioClient envía SMS con la API 2010-04-01 de Twilio.
type TwilioClient struct {
	http       *resty.Client
	accountSID string
	from       string
	log        *logger.Logger
}

// NewTwilioClient construye el cliente con autenticación básica (AccountSID:AuthToken).
func NewTwilioClient(cfg config.TwilioConfig, log *logger.Logger) *TwilioClient {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetBasicAuth(cfg.AccountSID, cfg.AuthToken).
		SetTimeout(15 * time.Second).
		SetRetryCount(2)
	return &TwilioClient{http: c, accountSID: cfg.AccountSID, from: cfg.PhoneNumber, log: log.Named("twilio")}
}

// SendSMS publica el mensaje y devuelve el SID asignado por Twilio.
func (t *TwilioClient) SendSMS(ctx context.Context, to, body string) (string, error) {
	var ok, failure twilioMessage
	resp, err := t.http.R().
		SetContext(ctx).
		SetPathParam("sid", t.accountSID).
		SetFormData(map[string]string{"To": to, "From": t.from, "Body": body}).
		SetResult(&ok).
		SetError(&failure).
		Post("/2010-04-01/Accounts/{sid}/Messages.json")
	if err != nil {
		return "", fmt.Errorf("twilio: %w", err)
	}
	if resp.IsError() {
		t.log.Warn().Int("status", resp.StatusCode()).Int("code", failure.Code).Msg(failure.Message)
		return "", fmt.Errorf("twilio: status %d: %s", resp.StatusCode(), failure.Message)
	}

	t.log.Debug().Str("sid", ok.SID).Str("status", ok.Status).Msg("sms enviado")
	return ok.SID, nil
}
