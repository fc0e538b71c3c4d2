package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. Email único por constraint.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, address, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Address, customer.Phone, customer.Email,
		customer.CreatedAt,
	)
	if err != nil {
		if translated := translateUnique(err); translated != err {
			return translated
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID (sin órdenes).
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, address, phone, email, created_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List devuelve los clientes más recientes primero con sus órdenes
// anidadas. Dos queries en lugar de un JOIN: el listado completo es
// pequeño (back-office) y el armado en memoria mantiene el orden.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, address, phone, email, created_at
		FROM customers ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	byID := make(map[string]*entity.Customer)
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.Orders = []*entity.Order{}
		list = append(list, &c)
		byID[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	orderQuery := `
		SELECT id, order_id, date, amount, status, customer_id, created_at
		FROM orders ORDER BY created_at DESC, id DESC`
	orderRows, err := r.q.Query(ctx, orderQuery)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer orderRows.Close()
	for orderRows.Next() {
		var o entity.Order
		if err := orderRows.Scan(&o.ID, &o.OrderID, &o.Date, &o.Amount, &o.Status, &o.CustomerID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if c, ok := byID[o.CustomerID]; ok {
			c.Orders = append(c.Orders, &o)
		}
	}
	return list, orderRows.Err()
}
