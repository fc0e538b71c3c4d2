package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/authz"
)

// Gate de autorización en la frontera de request. El sistema original
// solo filtraba el menú en el cliente; aquí toda ruta mutante ligada a
// una pantalla pasa por el gate en el servidor, porque el filtrado
// client-side no es una frontera de seguridad.

// RequireScreen exige que la sesión tenga acceso a la pantalla.
// Usar DESPUÉS de SessionMiddleware.
func RequireScreen(screen authz.ScreenKey) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sc := GetSession(c)
		if sc == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("UNAUTHORIZED", "sesión no encontrada"))
		}
		if !sc.Permissions.CanAccess(screen) {
			return c.Status(fiber.StatusForbidden).JSON(dto.NewError("FORBIDDEN", "la pantalla '"+string(screen)+"' no está permitida para esta cuenta"))
		}
		return c.Next()
	}
}

// RequireSubAction exige la sub-acción; implica la pantalla padre (una
// sub-acción jamás se concede con el padre negado).
func RequireSubAction(sub authz.SubActionKey) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sc := GetSession(c)
		if sc == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("UNAUTHORIZED", "sesión no encontrada"))
		}
		if !sc.Permissions.CanDo(sub) {
			return c.Status(fiber.StatusForbidden).JSON(dto.NewError("FORBIDDEN", "la acción '"+string(sub)+"' no está permitida para esta cuenta"))
		}
		return c.Next()
	}
}
