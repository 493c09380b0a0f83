package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

// routeErrors mensajes propios de cada ruta para 404 y 500.
type routeErrors struct {
	notFound string
	failure  string
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

// writeError traduce un error de dominio a status + {"error": "..."}.
// Los 500 responden con el mensaje genérico de la ruta; el detalle solo va al log.
func writeError(c *fiber.Ctx, log *logger.Logger, err error, msgs routeErrors) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return fail(c, fiber.StatusBadRequest, ve.Msg)
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "Invalid request")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrLicenseInactive):
		return fail(c, fiber.StatusForbidden, "License is inactive")
	case errors.Is(err, domain.ErrLicenseExpired):
		return fail(c, fiber.StatusForbidden, "License has expired")
	case errors.Is(err, domain.ErrDeviceLimitExceeded):
		return fail(c, fiber.StatusForbidden, "Device limit reached for this license")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrNotFound):
		msg := msgs.notFound
		if msg == "" {
			msg = "Not found"
		}
		return fail(c, fiber.StatusNotFound, msg)
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, "Resource already exists")
	case errors.Is(err, domain.ErrInsufficientStock):
		return fail(c, fiber.StatusConflict, "Insufficient stock")
	case errors.Is(err, domain.ErrTooManyAttempts):
		return fail(c, fiber.StatusTooManyRequests, "Too many failed attempts, try again later")
	}

	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", requestID(c)).
		Msg(msgs.failure)
	return fail(c, fiber.StatusInternalServerError, msgs.failure)
}

// bodyError respuesta para un JSON que no se pudo decodificar.
func bodyError(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "Invalid JSON body")
}
