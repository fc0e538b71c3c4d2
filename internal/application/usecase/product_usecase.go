package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos con imagen vía el almacén de binarios.
type ProductUseCase struct {
	products repository.ProductRepository
	images   ports.ImageStore
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(products repository.ProductRepository, images ports.ImageStore) *ProductUseCase {
	return &ProductUseCase{products: products, images: images}
}

// List devuelve los productos más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context) ([]*dto.ProductResponse, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Create valida name/price/image obligatorios, guarda la imagen en el
// colaborador y persiste el producto con la URL devuelta.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.IsZero() || len(in.Image) == 0 {
		return nil, fmt.Errorf("%w: name, price e image son requeridos", domain.ErrValidation)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: stock no puede ser negativo", domain.ErrValidation)
	}

	imageURL, err := uc.images.Store(ctx, in.ImageName, in.Image)
	if err != nil {
		return nil, fmt.Errorf("almacenar imagen: %w", err)
	}

	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    imageURL,
		CreatedAt:   time.Now(),
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica campos parciales sobre el producto existente; una imagen
// nueva reemplaza la URL anterior. ErrNotFound si el id no existe.
func (uc *ProductUseCase) Update(ctx context.Context, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.ID == "" {
		return nil, fmt.Errorf("%w: id es requerido", domain.ErrValidation)
	}
	product, err := uc.products.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, fmt.Errorf("%w: stock no puede ser negativo", domain.ErrValidation)
		}
		product.Stock = *in.Stock
	}
	if len(in.Image) > 0 {
		imageURL, err := uc.images.Store(ctx, in.ImageName, in.Image)
		if err != nil {
			return nil, fmt.Errorf("almacenar imagen: %w", err)
		}
		product.ImageURL = imageURL
	}

	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto; ErrNotFound pasa hacia arriba sin traducir.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id es requerido", domain.ErrValidation)
	}
	return uc.products.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}
