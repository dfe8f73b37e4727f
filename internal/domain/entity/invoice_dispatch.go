package entity

import "time"

// Canales de envío.
const (
	DispatchChannelEmail = "email"
)

// InvoiceDispatch registra un intento de envío de una factura al cliente.
type InvoiceDispatch struct {
	ID            int64
	InvoiceID     int64
	Status        string // etiqueta indicada por quien solicita el envío
	Channel       string
	Recipient     string
	Delivered     bool
	DeliveryError string
	SentAt        time.Time
}
