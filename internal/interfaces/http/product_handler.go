package http

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/shopspring/decimal"
)

// ProductHandler CRUD de productos (multipart con imagen).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos (más recientes primero)
// @Tags         products
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "nombre"
// @Param        description  formData  string  false  "descripción"
// @Param        price        formData  number  true   "precio"
// @Param        stock        formData  integer false  "stock"
// @Param        image        formData  file    true   "imagen"
// @Success      200  {object}  dto.ProductSuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in := dto.CreateProductRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	}
	if raw := c.FormValue("price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return respondValidation(c, "price inválido")
		}
		in.Price = price
	}
	if raw := c.FormValue("stock"); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			return respondValidation(c, "stock inválido")
		}
		in.Stock = stock
	}
	if name, data, err := readFormFile(c, "image"); err == nil {
		in.ImageName = name
		in.Image = data
	}

	product, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ProductSuccessResponse{Success: true, Product: *product})
}

// Update godoc
// @Summary      Actualizar producto (campos parciales)
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     formData  string  true   "id del producto"
// @Param        image  formData  file    false  "imagen nueva (reemplaza la URL)"
// @Success      200  {object}  dto.ProductSuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	in := dto.UpdateProductRequest{ID: c.FormValue("id")}
	if in.ID == "" {
		return respondValidation(c, "Product id is required")
	}
	if raw := c.FormValue("name"); raw != "" {
		in.Name = &raw
	}
	if raw := c.FormValue("description"); raw != "" {
		in.Description = &raw
	}
	if raw := c.FormValue("price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return respondValidation(c, "price inválido")
		}
		in.Price = &price
	}
	if raw := c.FormValue("stock"); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			return respondValidation(c, "stock inválido")
		}
		in.Stock = &stock
	}
	if name, data, err := readFormFile(c, "image"); err == nil {
		in.ImageName = name
		in.Image = data
	}

	product, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ProductSuccessResponse{Success: true, Product: *product})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Produce      json
// @Param        id  query  string  true  "id del producto"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return respondValidation(c, "Product id is required")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// readFormFile lee un archivo multipart completo a memoria.
func readFormFile(c *fiber.Ctx, field string) (string, []byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return "", nil, err
	}
	data, err := readAll(header)
	if err != nil {
		return "", nil, err
	}
	return header.Filename, data, nil
}

func readAll(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
