package ports

import "context"

// SMSSender define el puerto de salida para mensajes de texto.
// Devuelve el identificador que asigna el proveedor.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
}
