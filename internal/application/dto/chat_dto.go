package dto

import "time"

// SaveBotLogRequest entrada de POST /bot/save-log.
type SaveBotLogRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerMessage string `json:"customerMessage"`
	BotResponse     string `json:"botResponse"`
	Channel         string `json:"channel"`
	Intent          string `json:"intent"`
}

// BotLogResponse salida de un registro de bot.
type BotLogResponse struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerMessage string    `json:"customer_message"`
	BotResponse     string    `json:"bot_response"`
	Channel         string    `json:"channel"`
	Intent          string    `json:"intent"`
	CreatedAt       time.Time `json:"created_at"`
}

// BotLogEnvelope respuesta de save-log.
type BotLogEnvelope struct {
	Log BotLogResponse `json:"log"`
}

// BotLogListResponse respuesta de GET /bot/save-log.
type BotLogListResponse struct {
	Logs []BotLogResponse `json:"logs"`
}

// ChatRequest mensaje del usuario para Therra AI.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse respuesta (del modelo o de respaldo).
type ChatResponse struct {
	Response string `json:"response"`
}
