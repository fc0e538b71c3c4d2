package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/backoffice-api/internal/domain/authz"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, email, password_hash, role, access, permissions, created_at, updated_at`

// Create persiste un nuevo usuario. La unicidad de username y email la
// decide la constraint; una violación se traduce al campo afectado.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, role, access, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	perms, err := marshalPermissions(user.Permissions)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		string(user.Role), string(user.Access), perms,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if translated := translateUnique(err); translated != err {
			return translated
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get user by id")
}

// GetByUsernameOrEmail resuelve el identificador de login contra
// username O email.
func (r *UserRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, identifier), "get user by identifier")
}

// List devuelve todos los usuarios, más recientes primero.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update actualiza rol, acceso y mapa de permisos. El mapa reemplaza por
// completo al anterior (replace-on-save, no merge).
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET role = $2, access = $3, permissions = $4, updated_at = $5
		WHERE id = $1`
	perms, err := marshalPermissions(user.Permissions)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx, query,
		user.ID, string(user.Role), string(user.Access), perms, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var role, access string
	var perms []byte
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role, &access, &perms, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = authz.Role(role)
	u.Access = authz.Access(access)
	if len(perms) > 0 {
		set := authz.NewPermissionSet()
		if err := json.Unmarshal(perms, set); err != nil {
			return nil, fmt.Errorf("permissions jsonb: %w", err)
		}
		u.Permissions = set
	}
	return &u, nil
}

// marshalPermissions serializa el mapa normalizado; nil o vacío persiste
// como NULL para que la evaluación caiga al nivel de acceso.
func marshalPermissions(set *authz.PermissionSet) ([]byte, error) {
	if set.IsEmpty() {
		return nil, nil
	}
	data, err := json.Marshal(set.Normalize())
	if err != nil {
		return nil, fmt.Errorf("serializar permisos: %w", err)
	}
	return data, nil
}
