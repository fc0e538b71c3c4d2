package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/authz"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	httpapi "github.com/jhoicas/backoffice-api/internal/interfaces/http"
)

// Fakes en memoria con la semántica de los adaptadores reales.

type stubUserRepo struct {
	users []*entity.User
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
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

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetByUsernameOrEmail(_ context.Context, identifier string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*entity.User, error) { return r.users, nil }

func (r *stubUserRepo) Update(_ context.Context, user *entity.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubCustomerRepo struct {
	customers []*entity.Customer
}

func (r *stubCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	for _, c := range r.customers {
		if c.Email == customer.Email {
			return domain.NewDuplicateKey("email")
		}
	}
	r.customers = append(r.customers, customer)
	return nil
}

func (r *stubCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *stubCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	return r.customers, nil
}

type stubOrderRepo struct {
	orders []*entity.Order
}

func (r *stubOrderRepo) Create(_ context.Context, order *entity.Order) error {
	for _, o := range r.orders {
		if o.OrderID == order.OrderID {
			return domain.NewDuplicateKey("orderId")
		}
	}
	r.orders = append(r.orders, order)
	return nil
}

func (r *stubOrderRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

type stubTxRunner struct {
	customers *stubCustomerRepo
	orders    *stubOrderRepo
}

func (t *stubTxRunner) Run(_ context.Context, fn func(repository.CustomerRepository, repository.OrderRepository) error) error {
	staged := &stubTxRunner{
		customers: &stubCustomerRepo{customers: append([]*entity.Customer(nil), t.customers.customers...)},
		orders:    &stubOrderRepo{orders: append([]*entity.Order(nil), t.orders.orders...)},
	}
	if err := fn(staged.customers, staged.orders); err != nil {
		return err
	}
	t.customers.customers = staged.customers.customers
	t.orders.orders = staged.orders.orders
	return nil
}

func newAuthApp(repo *stubUserRepo) *fiber.App {
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "backoffice-test"})
	handler := httpapi.NewAuthHandler(uc)
	app := fiber.New()
	app.Post("/api/login", handler.Login)
	app.Post("/api/signup", handler.Signup)
	return app
}

func seedAccount(t *testing.T, repo *stubUserRepo, username, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users = append(repo.users, &entity.User{
		ID:           "u-" + username,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         authz.RoleStaff,
		Access:       authz.AccessFull,
	})
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *nethttp.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *nethttp.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/login
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginEndpoint_PorEmail(t *testing.T) {
	repo := &stubUserRepo{}
	seedAccount(t, repo, "carla", "carla@acme.test", "Secreta123")
	app := newAuthApp(repo)

	resp := postJSON(t, app, "/api/login", fiber.Map{
		"identifier": "carla@acme.test",
		"password":   "Secreta123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "carla", body.User.Username)
}

// Cuenta inexistente y password incorrecto se distinguen en el contrato.
func TestLoginEndpoint_CuentaInexistente(t *testing.T) {
	app := newAuthApp(&stubUserRepo{})

	resp := postJSON(t, app, "/api/login", fiber.Map{"identifier": "nadie", "password": "x"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "User not found", body.Message)
}

func TestLoginEndpoint_PasswordIncorrecto(t *testing.T) {
	repo := &stubUserRepo{}
	seedAccount(t, repo, "carla", "carla@acme.test", "Secreta123")
	app := newAuthApp(repo)

	resp := postJSON(t, app, "/api/login", fiber.Map{"identifier": "carla", "password": "mala"})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Invalid password", body.Message)
}

func TestLoginEndpoint_CamposRequeridos(t *testing.T) {
	app := newAuthApp(&stubUserRepo{})
	resp := postJSON(t, app, "/api/login", fiber.Map{"identifier": "carla"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignupEndpoint_CuentaNueva(t *testing.T) {
	repo := &stubUserRepo{}
	app := newAuthApp(repo)

	resp := postJSON(t, app, "/api/signup", fiber.Map{
		"name":     "nuevo",
		"email":    "nuevo@acme.test",
		"password": "Secreta123",
		"role":     "staff",
		"access":   "partial",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		User    struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "nuevo", body.User.Username)
	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "Secreta123", repo.users[0].PasswordHash)
}

func TestSignupEndpoint_EmailRegistrado(t *testing.T) {
	repo := &stubUserRepo{}
	seedAccount(t, repo, "carla", "carla@acme.test", "Secreta123")
	app := newAuthApp(repo)

	resp := postJSON(t, app, "/api/signup", fiber.Map{
		"name":     "otra",
		"email":    "carla@acme.test",
		"password": "Secreta123",
		"role":     "user",
		"access":   "partial",
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Email already registered.", body.Message)
}

func TestSignupEndpoint_CamposAusentes(t *testing.T) {
	app := newAuthApp(&stubUserRepo{})

	resp := postJSON(t, app, "/api/signup", fiber.Map{"name": "solo-nombre"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "All fields are required.", body.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/customers (doble modo)
// ──────────────────────────────────────────────────────────────────────────────

func newCustomerApp() (*fiber.App, *stubCustomerRepo, *stubOrderRepo) {
	customers := &stubCustomerRepo{}
	orders := &stubOrderRepo{}
	tx := &stubTxRunner{customers: customers, orders: orders}
	uc := usecase.NewCustomerUseCase(customers, orders, tx)
	handler := httpapi.NewCustomerHandler(uc)
	app := fiber.New()
	app.Get("/api/customers", handler.List)
	app.Post("/api/customers", handler.Create)
	return app, customers, orders
}

func TestCustomersEndpoint_ModoClienteNuevo(t *testing.T) {
	app, customers, _ := newCustomerApp()

	resp := postJSON(t, app, "/api/customers", fiber.Map{
		"name":    "Acme S.A.",
		"address": "Calle 10 #4-21",
		"phone":   "3001234567",
		"email":   "compras@acme.test",
		"orders": []fiber.Map{
			{"orderId": "ORD-1", "date": "2026-08-01", "amount": "150", "status": "Pending"},
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success  bool `json:"success"`
		Customer struct {
			ID     string `json:"id"`
			Orders []struct {
				OrderID string `json:"orderId"`
			} `json:"orders"`
		} `json:"customer"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	require.Len(t, body.Customer.Orders, 1)
	assert.Equal(t, "ORD-1", body.Customer.Orders[0].OrderID)
	assert.Len(t, customers.customers, 1)
}

// customerId+order en el cuerpo selecciona el modo append.
func TestCustomersEndpoint_ModoAppend(t *testing.T) {
	app, customers, orders := newCustomerApp()
	customers.customers = append(customers.customers, &entity.Customer{
		ID: "c-1", Name: "Acme", Address: "x", Phone: "y", Email: "a@acme.test",
	})

	resp := postJSON(t, app, "/api/customers", fiber.Map{
		"customerId": "c-1",
		"order":      fiber.Map{"orderId": "ORD-9", "date": "2026-08-02", "amount": "99.90", "status": "Shipped"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Order   struct {
			OrderID    string `json:"orderId"`
			CustomerID string `json:"customerId"`
		} `json:"order"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "ORD-9", body.Order.OrderID)
	assert.Equal(t, "c-1", body.Order.CustomerID)
	assert.Len(t, orders.orders, 1)
}

func TestCustomersEndpoint_AppendClienteInexistente(t *testing.T) {
	app, _, _ := newCustomerApp()

	resp := postJSON(t, app, "/api/customers", fiber.Map{
		"customerId": "fantasma",
		"order":      fiber.Map{"orderId": "ORD-9", "date": "2026-08-02", "amount": "10", "status": "Pending"},
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCustomersEndpoint_OrderIDDuplicado(t *testing.T) {
	app, customers, orders := newCustomerApp()
	customers.customers = append(customers.customers, &entity.Customer{ID: "c-1", Email: "a@acme.test"})
	orders.orders = append(orders.orders, &entity.Order{ID: "o-1", OrderID: "ORD-9", CustomerID: "c-1"})

	resp := postJSON(t, app, "/api/customers", fiber.Map{
		"customerId": "c-1",
		"order":      fiber.Map{"orderId": "ORD-9", "date": "2026-08-02", "amount": "10", "status": "Pending"},
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "DUPLICATE_orderId", body.Code)
	assert.Equal(t, "Order ID already exists.", body.Message)
}

func TestCustomersEndpoint_EmailDuplicado(t *testing.T) {
	app, customers, _ := newCustomerApp()
	customers.customers = append(customers.customers, &entity.Customer{ID: "c-1", Email: "compras@acme.test"})

	resp := postJSON(t, app, "/api/customers", fiber.Map{
		"name":    "Acme S.A.",
		"address": "Calle 10",
		"phone":   "300",
		"email":   "compras@acme.test",
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Email already exists.", body.Message)
}
