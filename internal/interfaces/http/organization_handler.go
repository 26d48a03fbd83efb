package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Axioma-api/internal/application/dto"
	"github.com/jhoicas/Axioma-api/internal/application/usecase"
	"github.com/jhoicas/Axioma-api/internal/domain"
	"github.com/jhoicas/Axioma-api/pkg/logger"
)

// OrganizationHandler onboarding y ajustes de la organización.
type OrganizationHandler struct {
	uc  *usecase.OrganizationUseCase
	log *logger.Logger
}

// NewOrganizationHandler construye el handler.
func NewOrganizationHandler(uc *usecase.OrganizationUseCase, log *logger.Logger) *OrganizationHandler {
	return &OrganizationHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear organización (onboarding)
// @Description  Crea la organización y la membresía OWNER del usuario autenticado.
// @Tags         organizations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrganizationRequest  true  "Datos de la organización"
// @Success      201   {object}  dto.OrganizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/organizations [post]
func (h *OrganizationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateOrganization(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      Organizaciones del usuario
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MembershipResponse
// @Router       /api/me/organizations [get]
func (h *OrganizationHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMyOrganizations(c.Context(), GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Organización activa
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Param        X-Organization-ID  header  string  false  "Organización activa"
// @Success      200  {object}  dto.OrganizationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/organization [get]
func (h *OrganizationHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetOrganization(c.Context(), GetTenant(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar organización (OWNER/ADMIN)
// @Tags         organizations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        X-Organization-ID  header  string  false  "Organización activa"
// @Param        body  body  dto.UpdateOrganizationRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.OrganizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/organization [put]
func (h *OrganizationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateOrganization(c.Context(), GetTenant(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// UploadLogo godoc
// @Summary      Subir logo (PNG/JPEG, máx. 2 MB)
// @Tags         organizations
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        X-Organization-ID  header    string  false  "Organización activa"
// @Param        logo               formData  file    true   "Imagen del logo"
// @Success      200  {object}  dto.OrganizationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/organization/logo [post]
func (h *OrganizationHandler) UploadLogo(c *fiber.Ctx) error {
	fh, err := c.FormFile("logo")
	if err != nil {
		return writeError(c, h.log, domain.NewValidationError("logo", "es obligatorio"))
	}
	if fh.Size > usecase.MaxLogoBytes {
		return writeError(c, h.log, domain.NewValidationError("logo", "el archivo supera 2 MB"))
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, h.log, fmt.Errorf("abrir logo: %w", err))
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, usecase.MaxLogoBytes+1))
	if err != nil {
		return writeError(c, h.log, fmt.Errorf("leer logo: %w", err))
	}

	out, err := h.uc.UploadLogo(c.Context(), GetTenant(c), dto.UploadLogoRequest{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListMembers godoc
// @Summary      Miembros de la organización
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Param        X-Organization-ID  header  string  false  "Organización activa"
// @Success      200  {array}  dto.MemberResponse
// @Router       /api/organization/members [get]
func (h *OrganizationHandler) ListMembers(c *fiber.Ctx) error {
	out, err := h.uc.ListMembers(c.Context(), GetTenant(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
