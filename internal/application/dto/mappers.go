package dto

import (
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
)

// DateLayout formato de fecha de las series y del libro de ventas.
const DateLayout = "2006-01-02"

// FromProduct mapea la entidad a su salida HTTP.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromOrder mapea un pedido.
func FromOrder(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		ProductID:     o.ProductID,
		ProductName:   o.ProductName,
		Quantity:      o.Quantity,
		TotalAmount:   o.TotalAmount,
		Channel:       o.Channel,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// FromSalesRecord mapea una línea del libro.
func FromSalesRecord(r *entity.SalesRecord) SalesRecordResponse {
	return SalesRecordResponse{
		ID:          r.ID,
		OrderID:     r.OrderID,
		Amount:      r.Amount,
		Type:        r.Type,
		Description: r.Description,
		Date:        r.Date.UTC().Format(DateLayout),
		CreatedAt:   r.CreatedAt,
	}
}

// FromBotLog mapea un registro de bot.
func FromBotLog(l *entity.BotLog) BotLogResponse {
	return BotLogResponse{
		ID:              l.ID,
		CustomerName:    l.CustomerName,
		CustomerMessage: l.CustomerMessage,
		BotResponse:     l.BotResponse,
		Channel:         l.Channel,
		Intent:          l.Intent,
		CreatedAt:       l.CreatedAt,
	}
}
