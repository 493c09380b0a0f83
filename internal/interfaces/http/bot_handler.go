package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/usecase"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

// BotHandler registro de conversaciones de bots externos (WhatsApp/Telegram).
type BotHandler struct {
	uc  *usecase.BotLogUseCase
	log *logger.Logger
}

// NewBotHandler construye el handler.
func NewBotHandler(uc *usecase.BotLogUseCase, log *logger.Logger) *BotHandler {
	return &BotHandler{uc: uc, log: log}
}

// SaveLog godoc
// @Summary      Guardar intercambio de un bot (público)
// @Tags         bot
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveBotLogRequest  true  "customerMessage y botResponse obligatorios"
// @Success      200   {object}  dto.BotLogEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bot/save-log [post]
func (h *BotHandler) SaveLog(c *fiber.Ctx) error {
	var in dto.SaveBotLogRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c)
	}
	out, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, routeErrors{failure: "Failed to save log"})
	}
	return c.JSON(dto.BotLogEnvelope{Log: *out})
}

// ListLogs godoc
// @Summary      Últimos 100 registros de bots
// @Tags         bot
// @Security     Bearer
// @Produce      json
// @Param        channel  query  string  false  "whatsapp | telegram | web"
// @Success      200      {object}  dto.BotLogListResponse
// @Router       /api/bot/save-log [get]
func (h *BotHandler) ListLogs(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("channel"))
	if err != nil {
		return writeError(c, h.log, err, routeErrors{failure: "Failed to fetch logs"})
	}
	return c.JSON(out)
}
