package entity

import "time"

// Estados de usuario.
const (
	UserStatusActive   = "Activo"
	UserStatusInactive = "Inactivo"
)

// User representa un usuario que emite facturas.
type User struct {
	ID           int64
	RoleID       int64
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Status       string
	CreatedAt    time.Time
}
