package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/orders"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

// OrderHandler ingreso, listado y cambio de estado de pedidos.
type OrderHandler struct {
	uc  *orders.OrderUseCase
	log *logger.Logger
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar pedidos (más recientes primero)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(100)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, h.log, err, routeErrors{failure: "Failed to fetch orders"})
	}
	return c.JSON(out)
}

// Insert godoc
// @Summary      Registrar pedido
// @Description  En una transacción: crea el pedido, descuenta stock y asienta el ingreso.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos del pedido"
// @Success      200   {object}  dto.CreateOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/insert [post]
func (h *OrderHandler) Insert(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c)
	}
	out, err := h.uc.Place(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, routeErrors{notFound: "Product not found", failure: "Failed to create order"})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de un pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "orderId, status"
// @Success      200   {object}  dto.OrderEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/update [post]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, routeErrors{notFound: "Order not found", failure: "Failed to update order"})
	}
	return c.JSON(dto.OrderEnvelope{Order: *out})
}
