package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/pkg/jwt"
)

// Locals keys para UserID y el tenant resuelto en Fiber.
const (
	LocalUserID = "user_id"
	LocalTenant = "tenant"
)

// AuthMiddleware valida el Bearer Token JWT y deja el UserID (claim sub) en c.Locals.
// Sin sesión: los navegadores (Accept: text/html) se redirigen a loginURL; la API responde 401.
func AuthMiddleware(jwtSecret, loginURL string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reject := func(code, msg string) error {
			if loginURL != "" && strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMETextHTML) {
				return c.Redirect(loginURL, fiber.StatusSeeOther)
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
		}

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return reject("MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return reject("INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return reject("MISSING_TOKEN", "token vacío")
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return reject("INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
