package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Axioma-api/internal/application/tenant"
	"github.com/jhoicas/Axioma-api/pkg/logger"
)

// HeaderOrganizationID selecciona la organización activa cuando el usuario tiene varias.
const HeaderOrganizationID = "X-Organization-ID"

// tenantResolver es el contrato mínimo que necesita el middleware. Lo implementa *tenant.Resolver.
type tenantResolver interface {
	Resolve(ctx context.Context, userID, requestedOrgID string) (tenant.Context, error)
}

// TenantMiddleware resuelve la membresía del usuario y deja el tenant.Context en c.Locals.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID).
//
// Comportamiento:
//   - 401 si no hay usuario en el contexto.
//   - 403 si el usuario no pertenece a la organización pedida o no tiene ninguna.
//   - 409 si tiene varias y no envió X-Organization-ID.
func TenantMiddleware(resolver tenantResolver, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tc, err := resolver.Resolve(c.Context(), GetUserID(c), c.Get(HeaderOrganizationID))
		if err != nil {
			return writeError(c, log, err)
		}
		c.Locals(LocalTenant, tc)
		return c.Next()
	}
}

// GetTenant devuelve el tenant resuelto (después de TenantMiddleware).
func GetTenant(c *fiber.Ctx) tenant.Context {
	tc, _ := c.Locals(LocalTenant).(tenant.Context)
	return tc
}
