package entity

import (
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/authz"
)

// User representa una cuenta del personal del back-office.
// Username y Email son únicos a nivel de almacenamiento.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt, nunca sale de la capa de auth
	Role         authz.Role
	Access       authz.Access
	Permissions  *authz.PermissionSet // nil = sin mapa fino, se cae al Access
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
