package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/usecase"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

// LicenseHandler consola de administración de licencias (solo admin).
type LicenseHandler struct {
	uc  *usecase.LicenseUseCase
	log *logger.Logger
}

// NewLicenseHandler construye el handler.
func NewLicenseHandler(uc *usecase.LicenseUseCase, log *logger.Logger) *LicenseHandler {
	return &LicenseHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar licencias con estadísticas
// @Tags         licenses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LicenseListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/licenses [get]
func (h *LicenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err, routeErrors{failure: "Failed to fetch licenses"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Emitir licencia
// @Description  Genera un código UMKM-<millis>-<6 base36>. maxDevices por defecto 1.
// @Tags         licenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLicenseRequest  true  "businessName, expiresAt?, maxDevices?"
// @Success      200   {object}  dto.LicenseEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/licenses [post]
func (h *LicenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetRole(c), in)
	if err != nil {
		return writeError(c, h.log, err, routeErrors{failure: "Failed to create license"})
	}
	return c.JSON(dto.LicenseEnvelope{License: *out})
}

// Update godoc
// @Summary      Actualizar licencia (parcial)
// @Description  Solo cambian los campos enviados; expiresAt null quita el vencimiento.
// @Tags         licenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateLicenseRequest  true  "licenseId y campos a cambiar"
// @Success      200   {object}  dto.LicenseEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/licenses/update [post]
func (h *LicenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, routeErrors{notFound: "License not found", failure: "Failed to update license"})
	}
	return c.JSON(dto.LicenseEnvelope{License: *out})
}

// Delete godoc
// @Summary      Borrar licencia
// @Tags         licenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LicenseIDRequest  true  "licenseId"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/licenses/delete [post]
func (h *LicenseHandler) Delete(c *fiber.Ctx) error {
	var in dto.LicenseIDRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c)
	}
	if err := h.uc.Delete(c.UserContext(), in); err != nil {
		return writeError(c, h.log, err, routeErrors{notFound: "License not found", failure: "Failed to delete license"})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// ResetDevices godoc
// @Summary      Desvincular todos los dispositivos de una licencia
// @Tags         licenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LicenseIDRequest  true  "licenseId"
// @Success      200   {object}  dto.LicenseEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/licenses/reset-devices [post]
func (h *LicenseHandler) ResetDevices(c *fiber.Ctx) error {
	var in dto.LicenseIDRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c)
	}
	out, err := h.uc.ResetDevices(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, routeErrors{notFound: "License not found", failure: "Failed to reset devices"})
	}
	return c.JSON(dto.LicenseEnvelope{License: *out})
}
