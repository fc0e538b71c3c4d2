package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
)

// CustomerHandler listados y creación de clientes/órdenes.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler de clientes.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes con órdenes anidadas (más recientes primero)
// @Tags         customers
// @Produce      json
// @Success      200  {array}   dto.CustomerResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customers)
}

// Create godoc
// @Summary      Crear cliente (con órdenes opcionales) o agregar una orden
// @Description  Endpoint de doble modo: presencia de customerId+order selecciona el append de orden sobre un cliente existente; si no, se crea un cliente nuevo.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerPayload  true  "cliente nuevo u orden a agregar"
// @Success      200   {object}  dto.CreateCustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerPayload
	if err := c.BodyParser(&in); err != nil {
		return respondValidation(c, "cuerpo inválido")
	}

	if in.IsAppendOrder() {
		order, err := h.uc.AppendOrder(c.Context(), in.CustomerID, *in.Order)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.AppendOrderResponse{Success: true, Order: *order})
	}

	customer, err := h.uc.CreateWithOrders(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CreateCustomerResponse{Success: true, Customer: *customer})
}
