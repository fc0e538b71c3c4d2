package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una orden. order_id es único por constraint; la FK a
// customers valida que el cliente exista.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_id, date, amount, status, customer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.OrderID, order.Date, order.Amount, order.Status,
		order.CustomerID, order.CreatedAt,
	)
	if err != nil {
		if translated := translateUnique(err); translated != err {
			return translated
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListByCustomer devuelve las órdenes de un cliente, más recientes primero.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error) {
	query := `
		SELECT id, order_id, date, amount, status, customer_id, created_at
		FROM orders WHERE customer_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders by customer: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.OrderID, &o.Date, &o.Amount, &o.Status, &o.CustomerID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
