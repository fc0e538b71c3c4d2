package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. ImageURL es la referencia
// opaca que devuelve el almacén de binarios.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // nunca negativo
	Stock       int             // nunca negativo
	ImageURL    string
	CreatedAt   time.Time
}
