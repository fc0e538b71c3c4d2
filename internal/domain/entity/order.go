package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una orden.
const (
	OrderPending   = "Pending"
	OrderShipped   = "Shipped"
	OrderDelivered = "Delivered"
	OrderCancelled = "Cancelled"
)

// ValidOrderStatus reporta si el estado pertenece al conjunto cerrado.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order representa una orden de un cliente. OrderID es el identificador
// de negocio (único), distinto de la clave primaria.
type Order struct {
	ID         string
	OrderID    string
	Date       time.Time
	Amount     decimal.Decimal // valor monetario, nunca negativo
	Status     string
	CustomerID string
	CreatedAt  time.Time
}
