package entity

import "time"

// Estados de cliente.
const (
	ClientStatusActive   = "activo"
	ClientStatusInactive = "inactivo"
)

// Client representa un cliente al que se le emiten órdenes y facturas.
type Client struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Status    string
	CreatedAt time.Time
}

// FullName devuelve nombre y apellido.
func (c *Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
