package dto

import (
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/authz"
)

// LoginRequest entrada para login. Identifier acepta username o email.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// SessionUser payload mínimo de identidad que sale del login: solo los
// campos que el cliente necesita para filtrar navegación. El hash jamás
// viaja aquí.
type SessionUser struct {
	ID          string               `json:"id"`
	Username    string               `json:"username"`
	Role        authz.Role           `json:"role"`
	Access      authz.Access         `json:"access"`
	Permissions *authz.PermissionSet `json:"permissions,omitempty"`
}

// LoginResponse salida del login con el token de sesión.
type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    SessionUser `json:"user"`
}

// SignupRequest entrada para crear una cuenta. Name se usa también como
// username. El caller elige role y access libremente: hueco de
// escalamiento heredado del sistema observado, documentado en DESIGN.md
// a la espera de una política del dueño de autorización.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin manager staff user"`
	Access   string `json:"access" validate:"required,oneof=full partial"`
}

// UserResponse salida de un usuario (sin hash).
type UserResponse struct {
	ID          string               `json:"id"`
	Username    string               `json:"username"`
	Email       string               `json:"email"`
	Role        authz.Role           `json:"role"`
	Access      authz.Access         `json:"access"`
	Permissions *authz.PermissionSet `json:"permissions,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// SignupResponse salida del signup.
type SignupResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// UpdateUserRequest entrada del PATCH de usuarios. Role y Access van
// juntos o no van (both-or-neither); Permissions, si viene, reemplaza el
// mapa completo (el merge parcial lo calcula el cliente antes de llamar).
type UpdateUserRequest struct {
	ID          string               `json:"id" validate:"required"`
	Role        string               `json:"role" validate:"omitempty,oneof=admin manager staff user"`
	Access      string               `json:"access" validate:"omitempty,oneof=full partial"`
	Permissions *authz.PermissionSet `json:"permissions"`
}

// UpdateUserResponse salida del PATCH de usuarios.
type UpdateUserResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}
