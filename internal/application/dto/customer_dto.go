package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderInput entrada de una orden (creación anidada o append).
// Amount se valida en el caso de uso: obligatorio y no negativo.
type OrderInput struct {
	OrderID string          `json:"orderId" validate:"required"`
	Date    string          `json:"date" validate:"required"`
	Amount  decimal.Decimal `json:"amount"`
	Status  string          `json:"status" validate:"required"`
}

// CustomerPayload cuerpo del POST /customers. El endpoint tiene dos
// modos: presencia de CustomerID+Order selecciona append de orden; si
// no, se crea un cliente nuevo (con órdenes iniciales opcionales).
// La validación por modo se hace en el caso de uso.
type CustomerPayload struct {
	Name    string       `json:"name"`
	Address string       `json:"address"`
	Phone   string       `json:"phone"`
	Email   string       `json:"email"`
	Orders  []OrderInput `json:"orders"`

	CustomerID string      `json:"customerId"`
	Order      *OrderInput `json:"order"`
}

// IsAppendOrder reporta si el payload selecciona el modo append.
func (p *CustomerPayload) IsAppendOrder() bool {
	return p.CustomerID != "" && p.Order != nil
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"orderId"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	CustomerID string          `json:"customerId"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// CustomerResponse salida de un cliente con órdenes anidadas.
type CustomerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Orders    []OrderResponse `json:"orders"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CreateCustomerResponse salida del modo "cliente nuevo".
type CreateCustomerResponse struct {
	Success  bool             `json:"success"`
	Customer CustomerResponse `json:"customer"`
}

// AppendOrderResponse salida del modo "append de orden".
type AppendOrderResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}
