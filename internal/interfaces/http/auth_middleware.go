package http

import (
	"crypto/rsa"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/pkg/jwt"
)

// Locals keys para el principal autenticado en Fiber.
const (
	LocalPrincipalID = "principal_id"
	LocalRole        = "role"
)

// AuthMiddleware valida el Bearer Token JWT (RS256) y deja principal_id y role en c.Locals.
func AuthMiddleware(publicKey *rsa.PublicKey, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header required")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "Expected format: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Empty token")
		}
		subject, scope, err := jwt.Parse(publicKey, issuer, tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}
		role := entity.Role(scope)
		if subject == "" || !role.Valid() {
			return fiber.NewError(fiber.StatusUnauthorized, "Token without subject or role")
		}
		c.Locals(LocalPrincipalID, subject)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe ir después de AuthMiddleware.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing role")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Access denied for role "+role.String())
	}
}

// GetPrincipalID devuelve el subject del token (id de empresa o empleado).
func GetPrincipalID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalPrincipalID).(string)
	return s
}

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) entity.Role {
	r, _ := c.Locals(LocalRole).(entity.Role)
	return r
}

// GetPrincipal arma el entity.Principal que reciben los casos de uso.
func GetPrincipal(c *fiber.Ctx) entity.Principal {
	return entity.Principal{ID: GetPrincipalID(c), Role: GetRole(c)}
}
