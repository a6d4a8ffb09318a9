package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required,oneof=Admon Empleado Lector"`
}

// UpdateUserRequest entrada para actualizar un usuario; Password vacío conserva la actual.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password string  `json:"password" validate:"omitempty,min=6"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Role     *string `json:"role" validate:"omitempty,oneof=Admon Empleado Lector"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el principal de la sesión.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// MeResponse principal de la sesión actual y sus capacidades.
type MeResponse struct {
	UserID            string `json:"user_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	CanWrite          bool   `json:"can_write"`
	CanViewFinancials bool   `json:"can_view_financials"`
	CanManageUsers    bool   `json:"can_manage_users"`
}
