package usecase_test

import (
	"context"
	"errors"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// Fakes en memoria con la semántica de los adaptadores reales: lookups
// (nil, nil) sin fila, unicidad traducida a DuplicateKeyError, listados
// más recientes primero (aquí: orden de inserción invertido).

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.NewDuplicateKey("username")
		}
		if u.Email == user.Email {
			return domain.NewDuplicateKey("email")
		}
	}
	r.users = append(r.users, user)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsernameOrEmail(_ context.Context, identifier string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for i := len(r.users) - 1; i >= 0; i-- {
		out = append(out, r.users[i])
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type memCustomerRepo struct {
	customers []*entity.Customer
	orders    *memOrderRepo
}

func (r *memCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	for _, c := range r.customers {
		if c.Email == customer.Email {
			return domain.NewDuplicateKey("email")
		}
	}
	r.customers = append(r.customers, customer)
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for i := len(r.customers) - 1; i >= 0; i-- {
		c := *r.customers[i]
		if r.orders != nil {
			orders, _ := r.orders.ListByCustomer(ctx, c.ID)
			c.Orders = orders
		}
		out = append(out, &c)
	}
	return out, nil
}

type memOrderRepo struct {
	orders []*entity.Order
}

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	for _, o := range r.orders {
		if o.OrderID == order.OrderID {
			return domain.NewDuplicateKey("orderId")
		}
	}
	r.orders = append(r.orders, order)
	return nil
}

func (r *memOrderRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].CustomerID == customerID {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}

// memTxRunner simula todo-o-nada: trabaja sobre copias y solo publica el
// resultado en los repos reales si fn retorna nil.
type memTxRunner struct {
	customers *memCustomerRepo
	orders    *memOrderRepo
}

func (t *memTxRunner) Run(ctx context.Context, fn func(repository.CustomerRepository, repository.OrderRepository) error) error {
	stagedCustomers := &memCustomerRepo{customers: append([]*entity.Customer(nil), t.customers.customers...)}
	stagedOrders := &memOrderRepo{orders: append([]*entity.Order(nil), t.orders.orders...)}
	if err := fn(stagedCustomers, stagedOrders); err != nil {
		return err
	}
	t.customers.customers = stagedCustomers.customers
	t.orders.orders = stagedOrders.orders
	return nil
}

type memProductRepo struct {
	products []*entity.Product
}

func (r *memProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.products = append(r.products, product)
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for i := len(r.products) - 1; i >= 0; i-- {
		out = append(out, r.products[i])
	}
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, product *entity.Product) error {
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// memImageStore almacén de imágenes trivial; failWith fuerza el error.
type memImageStore struct {
	stored   []string
	failWith error
}

func (s *memImageStore) Store(_ context.Context, filename string, _ []byte) (string, error) {
	if s.failWith != nil {
		return "", s.failWith
	}
	s.stored = append(s.stored, filename)
	return "/uploads/" + filename, nil
}

var errStoreDown = errors.New("almacén caído")
