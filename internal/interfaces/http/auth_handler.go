package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/auth"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

// LoginObserver recibe el resultado de cada intento de login (métricas).
type LoginObserver interface {
	ObserveLogin(kind string, err error)
}

// AuthHandler maneja el login de comercio y el de la consola.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	observer LoginObserver
	log      *logger.Logger
}

// NewAuthHandler construye el handler de auth. observer puede ser nil.
func NewAuthHandler(uc *auth.AuthUseCase, observer LoginObserver, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, observer: observer, log: log}
}

func (h *AuthHandler) observe(kind string, err error) {
	if h.observer != nil {
		h.observer.ObserveLogin(kind, err)
	}
}

// LicenseLogin godoc
// @Summary      Login de comercio con código de licencia
// @Description  Valida la licencia, registra el dispositivo si hay cupo y emite el token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LicenseLoginRequest  true  "licenseCode, deviceId"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/umkm-login [post]
func (h *AuthHandler) LicenseLogin(c *fiber.Ctx) error {
	var in dto.LicenseLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c)
	}
	out, err := h.uc.LicenseLogin(c.UserContext(), in)
	h.observe("license", err)
	if err != nil {
		return writeError(c, h.log, err, routeErrors{notFound: "License not found", failure: "Login failed"})
	}
	return c.JSON(out)
}

// AdminLogin godoc
// @Summary      Login de la consola de licencias
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminLoginRequest  true  "password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/admin-login [post]
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var in dto.AdminLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c)
	}
	out, err := h.uc.AdminLogin(c.UserContext(), in)
	h.observe("admin", err)
	if err != nil {
		return writeError(c, h.log, err, routeErrors{failure: "Login failed"})
	}
	return c.JSON(out)
}
