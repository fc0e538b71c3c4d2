package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

// AuthHandler maneja login y signup.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "identifier (username o email), password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondValidation(c, "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return respondValidation(c, "identifier y password son requeridos")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// El contrato observado distingue cuenta inexistente (404)
			// de password incorrecto (401).
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("USER_NOT_FOUND", "User not found"))
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Signup godoc
// @Summary      Crear cuenta
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "name, email, password, role, access"
// @Success      200   {object}  dto.SignupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return respondValidation(c, "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return respondValidation(c, "All fields are required.")
	}
	user, err := h.uc.Signup(c.Context(), in)
	if err != nil {
		var dup *domain.DuplicateKeyError
		if errors.As(err, &dup) && dup.Field == "email" {
			// Mensaje histórico del signup, distinto del de clientes.
			return c.Status(fiber.StatusConflict).JSON(dto.NewError("DUPLICATE_email", "Email already registered."))
		}
		return respondError(c, err)
	}
	return c.JSON(dto.SignupResponse{Success: true, User: *user})
}
