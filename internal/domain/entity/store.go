package entity

import "time"

// Store representa una tienda emisora de facturas.
type Store struct {
	ID        int64
	Name      string
	Address   string
	Email     string
	LegalInfo string // información legal impresa en la factura
	CreatedAt time.Time
}
