package ports

import "context"

// Attachment archivo adjunto de un correo.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Email mensaje saliente. Text es obligatorio; HTML es opcional.
type Email struct {
	To          string
	ToName      string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Mailer define el puerto de salida para el envío de correo.
// Cualquier adaptador (SendGrid, simulado, mock) debe implementar esta interfaz.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}
