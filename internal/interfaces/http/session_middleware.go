package http

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/authz"
	pkgjwt "github.com/jhoicas/backoffice-api/pkg/jwt"
)

// localSession key del contexto de sesión en Fiber Locals.
const localSession = "session"

// SessionContext identidad decodificada del token: emitida en el login,
// adjunta a cada petición autorizada, descartada en el logout del
// cliente. Los handlers consumen este valor, nunca estado ambiente.
type SessionContext struct {
	UserID      string
	Username    string
	Role        authz.Role
	Access      authz.Access
	Permissions *authz.PermissionSet // efectivos, ya normalizados
}

// SessionMiddleware valida el Bearer token y deja el SessionContext en
// c.Locals. Si el token no trae mapa de permisos se sintetiza desde el
// nivel de acceso.
func SessionMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("MISSING_TOKEN", "Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("INVALID_TOKEN", "formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("MISSING_TOKEN", "token vacío"))
		}
		session, err := pkgjwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("INVALID_TOKEN", "token inválido o expirado"))
		}

		sc := &SessionContext{
			UserID:   session.UserID,
			Username: session.Username,
			Role:     authz.Role(session.Role),
			Access:   authz.Access(session.Access),
		}
		if len(session.Permissions) > 0 {
			set := authz.NewPermissionSet()
			if err := json.Unmarshal(session.Permissions, set); err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("INVALID_TOKEN", "permisos del token ilegibles"))
			}
			sc.Permissions = authz.Effective(sc.Access, set)
		} else {
			sc.Permissions = authz.Effective(sc.Access, nil)
		}

		c.Locals(localSession, sc)
		return c.Next()
	}
}

// GetSession devuelve el contexto de sesión (después del middleware).
func GetSession(c *fiber.Ctx) *SessionContext {
	v := c.Locals(localSession)
	if v == nil {
		return nil
	}
	sc, _ := v.(*SessionContext)
	return sc
}
