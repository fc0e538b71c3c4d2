package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// CustomerTxRunner ejecuta fn con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner; la interfaz evita que el caso de uso
// conozca pgx.
type CustomerTxRunner interface {
	Run(ctx context.Context, fn func(
		customers repository.CustomerRepository,
		orders repository.OrderRepository,
	) error) error
}

// CustomerUseCase flujo compuesto de clientes y órdenes.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	orders    repository.OrderRepository
	tx        CustomerTxRunner
}

// NewCustomerUseCase construye el caso de uso de clientes.
func NewCustomerUseCase(customers repository.CustomerRepository, orders repository.OrderRepository, tx CustomerTxRunner) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, orders: orders, tx: tx}
}

// List devuelve los clientes más recientes primero con órdenes anidadas.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*dto.CustomerResponse, error) {
	customers, err := uc.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// CreateWithOrders crea un cliente y su lote inicial de órdenes como una
// unidad todo-o-nada: cliente y órdenes se insertan en una sola
// transacción, y cualquier orderId duplicado aborta la unidad completa
// sin dejar cliente parcial.
func (uc *CustomerUseCase) CreateWithOrders(ctx context.Context, in dto.CustomerPayload) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Address == "" || in.Phone == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: todos los campos del cliente son requeridos", domain.ErrValidation)
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
	}

	orders := make([]*entity.Order, 0, len(in.Orders))
	for i, o := range in.Orders {
		order, err := buildOrder(o, customer.ID, now)
		if err != nil {
			return nil, fmt.Errorf("orden %d: %w", i, err)
		}
		orders = append(orders, order)
	}

	err := uc.tx.Run(ctx, func(customerRepo repository.CustomerRepository, orderRepo repository.OrderRepository) error {
		if err := customerRepo.Create(ctx, customer); err != nil {
			return err
		}
		for _, order := range orders {
			if err := orderRepo.Create(ctx, order); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	customer.Orders = orders
	return toCustomerResponse(customer), nil
}

// AppendOrder agrega una orden a un cliente existente. ErrNotFound si el
// cliente no resuelve; DuplicateKey(orderId) en colisión.
func (uc *CustomerUseCase) AppendOrder(ctx context.Context, customerID string, in dto.OrderInput) (*dto.OrderResponse, error) {
	customer, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	order, err := buildOrder(in, customer.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

// buildOrder valida los campos obligatorios de una orden y construye la
// entidad. Amount ausente (cero) o negativo y status fuera del conjunto
// son errores de validación, nunca llegan al store.
func buildOrder(in dto.OrderInput, customerID string, now time.Time) (*entity.Order, error) {
	if in.OrderID == "" || in.Date == "" || in.Status == "" || in.Amount.IsZero() {
		return nil, fmt.Errorf("%w: todos los campos de la orden son requeridos", domain.ErrValidation)
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount no puede ser negativo", domain.ErrValidation)
	}
	if !entity.ValidOrderStatus(in.Status) {
		return nil, fmt.Errorf("%w: status desconocido %q", domain.ErrValidation, in.Status)
	}
	date, err := parseOrderDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date inválida %q", domain.ErrValidation, in.Date)
	}
	return &entity.Order{
		ID:         uuid.New().String(),
		OrderID:    in.OrderID,
		Date:       date,
		Amount:     in.Amount,
		Status:     in.Status,
		CustomerID: customerID,
		CreatedAt:  now,
	}, nil
}

// parseOrderDate acepta fecha sola o timestamp RFC3339.
func parseOrderDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:         o.ID,
		OrderID:    o.OrderID,
		Date:       o.Date,
		Amount:     o.Amount,
		Status:     o.Status,
		CustomerID: o.CustomerID,
		CreatedAt:  o.CreatedAt,
	}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	orders := make([]dto.OrderResponse, 0, len(c.Orders))
	for _, o := range c.Orders {
		orders = append(orders, toOrderResponse(o))
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Orders:    orders,
		CreatedAt: c.CreatedAt,
	}
}
