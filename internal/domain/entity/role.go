package entity

// Role agrupa usuarios por tipo (ej. "administrador", "cajero").
type Role struct {
	ID          int64
	Type        string
	Description string
}
