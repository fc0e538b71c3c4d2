package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// List devuelve los clientes más recientes primero, con sus órdenes
	// anidadas (también más recientes primero).
	List(ctx context.Context) ([]*entity.Customer, error)
}
