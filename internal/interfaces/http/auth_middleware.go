package http

import (
	"context"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/pkg/jwt"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

// Locals keys de la sesión en Fiber.
const (
	LocalLicenseID = "license_id"
	LocalDeviceID  = "device_id"
	LocalRole      = "role"
)

// AuthMiddleware valida el Bearer Token JWT y carga licencia, dispositivo y rol en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, "Authorization header required")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "Authorization format: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "Empty token")
		}
		licenseID, deviceID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}
		if role == "" {
			return fail(c, fiber.StatusUnauthorized, "Token without role")
		}
		c.Locals(LocalLicenseID, licenseID)
		c.Locals(LocalDeviceID, deviceID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole permite pasar solo a los roles indicados. Va después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return fail(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		if !slices.Contains(roles, role) {
			return fail(c, fiber.StatusForbidden, "Forbidden")
		}
		return c.Next()
	}
}

// SessionVerifier relee el estado de la licencia de un token de comercio.
// Lo implementa *auth.AuthUseCase.
type SessionVerifier interface {
	VerifySession(ctx context.Context, licenseID, deviceID string) error
}

// RequireActiveLicense rechaza tokens umkm cuya licencia se desactivó, venció,
// se borró o cuyo dispositivo fue desvinculado después de emitir el token.
// Los tokens de admin pasan sin consulta.
func RequireActiveLicense(verifier SessionVerifier, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != entity.RoleUMKM {
			return c.Next()
		}
		if err := verifier.VerifySession(c.UserContext(), GetLicenseID(c), GetDeviceID(c)); err != nil {
			return writeError(c, log, err, routeErrors{notFound: "License not found", failure: "Failed to verify session"})
		}
		return c.Next()
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetLicenseID devuelve la licencia de la sesión (vacío para admin).
func GetLicenseID(c *fiber.Ctx) string { return localString(c, LocalLicenseID) }

// GetDeviceID devuelve el dispositivo de la sesión (vacío para admin).
func GetDeviceID(c *fiber.Ctx) string { return localString(c, LocalDeviceID) }

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }
