package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto (multipart).
// Price e Image se validan en el caso de uso: obligatorios, precio no
// negativo.
type CreateProductRequest struct {
	Name        string `validate:"required"`
	Description string
	Price       decimal.Decimal
	Stock       int `validate:"min=0"`
	ImageName   string
	Image       []byte
}

// UpdateProductRequest entrada del PATCH de productos (multipart,
// campos parciales; nil = sin cambio). Una imagen nueva reemplaza la URL.
type UpdateProductRequest struct {
	ID          string `validate:"required"`
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	ImageName   string
	Image       []byte
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"imageUrl"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ProductSuccessResponse envoltura de éxito con el producto afectado.
type ProductSuccessResponse struct {
	Success bool            `json:"success"`
	Product ProductResponse `json:"product"`
}
