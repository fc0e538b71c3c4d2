package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los lookups devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByUsernameOrEmail resuelve el identificador de login contra
	// username O email (lookup con OR lógico).
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error)
	// List devuelve los usuarios más recientes primero; los listados
	// dependen de ese orden.
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
