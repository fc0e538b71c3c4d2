package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/authz"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// UserUseCase listados y actualización de rol/acceso/permisos.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List devuelve los usuarios más recientes primero, sin hashes.
func (uc *UserUseCase) List(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// Update aplica el PATCH de un usuario. Reglas:
//   - role y access van juntos o no van (both-or-neither);
//   - permissions, si viene, reemplaza el mapa completo (replace-on-save,
//     el merge parcial es responsabilidad del cliente);
//   - el mapa se normaliza antes de persistir: ninguna sub-acción
//     concedida con su pantalla padre negada llega al store.
func (uc *UserUseCase) Update(ctx context.Context, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	hasRole := in.Role != ""
	hasAccess := in.Access != ""
	if hasRole != hasAccess {
		return nil, fmt.Errorf("%w: role y access deben enviarse juntos", domain.ErrValidation)
	}
	if !hasRole && in.Permissions == nil {
		return nil, fmt.Errorf("%w: nada que actualizar", domain.ErrValidation)
	}

	user, err := uc.users.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if hasRole {
		role := authz.Role(in.Role)
		access := authz.Access(in.Access)
		if !role.Valid() || !access.Valid() {
			return nil, fmt.Errorf("%w: role o access desconocido", domain.ErrValidation)
		}
		user.Role = role
		user.Access = access
	}
	if in.Permissions != nil {
		user.Permissions = in.Permissions.Normalize()
	}
	user.UpdatedAt = time.Now()

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}
