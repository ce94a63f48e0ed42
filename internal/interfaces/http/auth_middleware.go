package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/zapateria/bodega-api/internal/application/dto"
	"github.com/zapateria/bodega-api/internal/domain/entity"
	"github.com/zapateria/bodega-api/pkg/jwt"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalUID      = "uid"
	LocalUsername = "username"
	LocalRoleID   = "role_id"
)

// AuthMiddleware valida el Bearer Token JWT y deja uid, username y role_id en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("No se proporcionó un token."))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Token inválido."))
		}
		claims, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Token inválido."))
		}
		c.Locals(LocalUID, claims.UID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRoleID, entity.Role(claims.RoleID))
		return c.Next()
	}
}

// RequireRole permite el paso solo a los roles indicados. Ante un rol distinto
// responde 403 y corta la cadena.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Error(mensajeRol(roles)))
	}
}

// mensajeRol arma el mensaje de acceso denegado según el rol exigido.
func mensajeRol(roles []entity.Role) string {
	if len(roles) == 1 {
		switch roles[0] {
		case entity.RoleAdmin:
			return "No autorizado, solo administradores."
		case entity.RoleBodega:
			return "No autorizado, solo bodega."
		case entity.RoleTienda:
			return "No autorizado, solo tienda."
		}
	}
	return "No autorizado."
}

// GetUID devuelve el UID del contexto (después del middleware de auth).
func GetUID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUID).(int64)
	return v
}

// GetUsername devuelve el username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUsername).(string)
	return v
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) entity.Role {
	v, _ := c.Locals(LocalRoleID).(entity.Role)
	return v
}
