package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// validate instancia compartida para los tags `validate:` de los DTOs.
var validate = validator.New()

// duplicateMessages mensaje por campo para violaciones de unicidad,
// preservado del contrato del frontend existente.
var duplicateMessages = map[string]string{
	"username": "Username already exists.",
	"email":    "Email already exists.",
	"orderId":  "Order ID already exists.",
}

// respondError clasifica un error de dominio al contrato HTTP.
// Validación y duplicados nunca salen como 500; cualquier fallo no
// clasificado se loggea con contexto y sale como error genérico sin
// filtrar internals.
func respondError(c *fiber.Ctx, err error) error {
	var dup *domain.DuplicateKeyError
	if errors.As(err, &dup) {
		msg := duplicateMessages[dup.Field]
		if msg == "" {
			msg = "Duplicate value."
		}
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("DUPLICATE_"+dup.Field, msg))
	}
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", err.Error()))
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "recurso no encontrado"))
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("INVALID_CREDENTIALS", "Invalid password"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.NewError("FORBIDDEN", "acceso denegado"))
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error no clasificado en handler")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", "unexpected error"))
	}
}

// respondValidation responde 400 por campos requeridos ausentes.
func respondValidation(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", message))
}
