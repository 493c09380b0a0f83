package entity

import "time"

// BotLog conversación registrada por un bot externo (WhatsApp/Telegram). Solo inserción.
type BotLog struct {
	ID              string
	CustomerName    string
	CustomerMessage string
	BotResponse     string
	Channel         string
	Intent          string
	CreatedAt       time.Time
}

// TherraLog intercambio con el asistente Therra AI. Solo inserción.
type TherraLog struct {
	ID          string
	UserMessage string
	AIResponse  string
	CreatedAt   time.Time
}
