package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
)

// UserHandler listados y PATCH de usuarios.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios (más recientes primero)
// @Tags         users
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// Update godoc
// @Summary      Actualizar rol/acceso/permisos de un usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateUserRequest  true  "id; role+access juntos; permissions reemplaza el mapa"
// @Success      200   {object}  dto.UpdateUserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondValidation(c, "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return respondValidation(c, "All fields are required.")
	}
	user, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.UpdateUserResponse{Success: true, User: *user})
}
