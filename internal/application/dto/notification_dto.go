package dto

// SendEmailRequest body para POST /api/notifications/email.
type SendEmailRequest struct {
	To      string `json:"destinatario" validate:"required,email"`
	Subject string `json:"asunto" validate:"required,max=200"`
	Message string `json:"mensaje" validate:"required"`
}

// SendSMSRequest body para POST /api/notifications/sms.
type SendSMSRequest struct {
	To      string `json:"destinatario" validate:"required,e164"`
	Message string `json:"mensaje" validate:"required,max=1600"`
}

// SMSResponse resultado del envío de SMS.
type SMSResponse struct {
	Message   string `json:"mensaje"`
	MessageID string `json:"sid,omitempty"`
}
