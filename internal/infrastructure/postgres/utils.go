package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

// constraintFields traduce el nombre de la constraint violada al campo
// de dominio, para que el caller pueda mostrar el mensaje exacto
// ("Email already exists." vs "Order ID already exists.").
var constraintFields = map[string]string{
	"users_username_key":  "username",
	"users_email_key":     "email",
	"customers_email_key": "email",
	"orders_order_id_key": "orderId",
}

// translateUnique convierte una violación de constraint única (23505) en
// domain.DuplicateKeyError con el campo afectado. Devuelve el error
// original si no es una violación de unicidad.
func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" { // unique_violation
		return err
	}
	if field, ok := constraintFields[pgErr.ConstraintName]; ok {
		return domain.NewDuplicateKey(field)
	}
	return domain.ErrDuplicate
}
