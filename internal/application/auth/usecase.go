// Package auth implementa el verificador de credenciales y el alta de
// cuentas. El hash de la contraseña nunca sale de este paquete.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/authz"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para la emisión del token de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: signup y login.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica identifier (username o email) y password contra el hash
// almacenado y emite la sesión. ErrUserNotFound si no hay cuenta,
// ErrInvalidCredentials si el password no coincide. La comparación la
// hace bcrypt en tiempo constante; jamás se compara texto plano.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsernameOrEmail(ctx, in.Identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// El token lleva los permisos efectivos ya normalizados: el gate
	// decide por request sin tocar la DB.
	effective := authz.Effective(user.Access, user.Permissions)
	permsJSON, err := json.Marshal(effective)
	if err != nil {
		return nil, fmt.Errorf("serializar permisos de sesión: %w", err)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Session{
		UserID:      user.ID,
		Username:    user.Username,
		Role:        string(user.Role),
		Access:      string(user.Access),
		Permissions: permsJSON,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User: dto.SessionUser{
			ID:          user.ID,
			Username:    user.Username,
			Role:        user.Role,
			Access:      user.Access,
			Permissions: user.Permissions,
		},
	}, nil
}

// Signup crea una cuenta: hashea el password con bcrypt y persiste.
// La unicidad de username/email la decide la constraint del store; una
// colisión llega como DuplicateKeyError con el campo afectado.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.UserResponse, error) {
	role := authz.Role(in.Role)
	access := authz.Access(in.Access)
	if !role.Valid() || !access.Valid() {
		return nil, fmt.Errorf("%w: role o access desconocido", domain.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Access:       access,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ToUserResponse proyecta la entidad al DTO de salida (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		Access:      u.Access,
		Permissions: u.Permissions,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
