package dto

import "time"

// CreateUserRequest entrada para crear un usuario (clave en texto, se hashea en use case).
type CreateUserRequest struct {
	RoleID   int64  `json:"id_rol" validate:"required,gt=0"`
	Name     string `json:"nombre" validate:"required,min=1,max=200"`
	Email    string `json:"correo" validate:"required,email"`
	Password string `json:"clave" validate:"required,strongpwd"`
	Status   string `json:"estado" validate:"omitempty,oneof=Activo Inactivo"`
}

// UpdateUserRequest actualización parcial de un usuario.
type UpdateUserRequest struct {
	RoleID   *int64  `json:"id_rol" validate:"omitempty,gt=0"`
	Name     *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"correo" validate:"omitempty,email"`
	Password *string `json:"clave" validate:"omitempty,strongpwd"`
	Status   *string `json:"estado" validate:"omitempty,oneof=Activo Inactivo"`
}

// UserResponse salida de un usuario (sin clave).
type UserResponse struct {
	ID        int64     `json:"id"`
	RoleID    int64     `json:"id_rol"`
	Name      string    `json:"nombre"`
	Email     string    `json:"correo"`
	Status    string    `json:"estado"`
	CreatedAt time.Time `json:"fecha_creacion"`
}

// CreateRoleRequest body para POST /api/roles.
type CreateRoleRequest struct {
	Type        string `json:"tipo" validate:"required,min=1,max=50"`
	Description string `json:"descripcion" validate:"omitempty,max=255"`
}

// UpdateRoleRequest actualización parcial de un rol.
type UpdateRoleRequest struct {
	Type        *string `json:"tipo" validate:"omitempty,min=1,max=50"`
	Description *string `json:"descripcion" validate:"omitempty,max=255"`
}

// RoleResponse rol en respuestas.
type RoleResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"tipo"`
	Description string `json:"descripcion,omitempty"`
}
