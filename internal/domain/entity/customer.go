package entity

import "time"

// Customer representa un cliente del negocio. Email es único.
// Orders se carga en los listados (la orden no sobrevive a su cliente:
// FK con borrado en cascada a nivel de esquema).
type Customer struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	Orders    []*Order
	CreatedAt time.Time
}
