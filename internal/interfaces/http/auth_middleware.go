package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
)

// Locals keys de la sesión en Fiber.
const (
	LocalSession   = "session"
	LocalPrincipal = "principal"
)

// Authenticator carga la sesión de un token. *auth.AuthUseCase lo implementa.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
}

// AuthMiddleware valida el Bearer Token, carga la sesión del almacén y deja sesión y principal
// en c.Locals. Un token válido cuya sesión ya se cerró no autentica.
func AuthMiddleware(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return errorJSON(c, fiber.StatusUnauthorized, CodeUnauthorized, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return errorJSON(c, fiber.StatusUnauthorized, CodeUnauthorized, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return errorJSON(c, fiber.StatusUnauthorized, CodeUnauthorized, "token vacío")
		}
		session, err := authn.Authenticate(c.UserContext(), tokenString)
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalSession, session)
		c.Locals(LocalPrincipal, session.Principal)
		return c.Next()
	}
}

// RequireRole deja pasar solo a los principales con alguno de los roles indicados.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return errorJSON(c, fiber.StatusUnauthorized, CodeUnauthorized, "sesión sin rol")
		}
		if _, ok := allowed[role]; !ok {
			return errorJSON(c, fiber.StatusForbidden, CodeForbidden, "permiso insuficiente para esta operación")
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el principal de la sesión (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) entity.Principal {
	p, _ := c.Locals(LocalPrincipal).(entity.Principal)
	return p
}

// GetSessionID devuelve el ID de la sesión actual.
func GetSessionID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	if s == nil {
		return ""
	}
	return s.ID
}

// GetRole devuelve el rol del principal actual.
func GetRole(c *fiber.Ctx) string {
	return GetPrincipal(c).Role
}
