package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/usecase"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

// ChatHandler asistente Therra AI.
type ChatHandler struct {
	uc  *usecase.ChatUseCase
	log *logger.Logger
}

// NewChatHandler construye el handler.
func NewChatHandler(uc *usecase.ChatUseCase, log *logger.Logger) *ChatHandler {
	return &ChatHandler{uc: uc, log: log}
}

// Chat godoc
// @Summary      Conversar con Therra AI
// @Description  Los fallos del proveedor no se propagan: se responde un texto de respaldo con 200.
// @Tags         therra
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "message"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/therra/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c)
	}
	out, err := h.uc.Chat(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, routeErrors{failure: "Failed to process message"})
	}
	return c.JSON(out)
}
