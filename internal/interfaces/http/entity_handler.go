package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/internal/application/usecase"
	"github.com/jhoicas/Axioma-api/pkg/logger"
)

// EntityHandler clientes y proveedores (protegido).
type EntityHandler struct {
	uc  *usecase.EntityUseCase
	log *logger.Logger
}

// NewEntityHandler construye el handler.
func NewEntityHandler(uc *usecase.EntityUseCase, log *logger.Logger) *EntityHandler {
	return &EntityHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear cliente/proveedor
// @Tags         entities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntityRequest  true  "Datos de la entidad"
// @Success      201   {object}  dto.EntityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/entities [post]
func (h *EntityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetTenant(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar entidades
// @Tags         entities
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "CLIENT, SUPPLIER o BOTH"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.EntityListResponse
// @Router       /api/entities [get]
func (h *EntityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetTenant(c), c.Query("type"), pageFromQuery(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListCustomers godoc
// @Summary      Clientes para el formulario de orden (CLIENT o BOTH)
// @Tags         entities
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EntityListResponse
// @Router       /api/entities/customers [get]
func (h *EntityHandler) ListCustomers(c *fiber.Ctx) error {
	out, err := h.uc.ListCustomers(c.Context(), GetTenant(c), pageFromQuery(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
}
