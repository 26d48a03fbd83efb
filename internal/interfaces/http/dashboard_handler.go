package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Axioma-api/internal/application/analytics"
	"github.com/jhoicas/Axioma-api/pkg/logger"
)

// DashboardHandler KPIs del mes, cartera y serie diaria.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Dashboard de la organización
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        X-Organization-ID  header  string  false  "Organización activa"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context(), GetTenant(c).OrganizationID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
