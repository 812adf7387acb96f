package handlers

import (
	request "furniture_warehouse/internal/adapter/http/dto/request"
	response "furniture_warehouse/internal/adapter/http/dto/response"
	"furniture_warehouse/internal/usecase"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes orders and their line items.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// List godoc
// @Summary      List orders, most recent first
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.OrderResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// Get godoc
// @Summary      Get an order with its line items
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}
	order, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// Create godoc
// @Summary      Create an order and its line items atomically
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order  body      request.CreateOrderRequest  true  "Order"
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "order", err)
		return
	}
	log.Printf("[order][handler] create start client_id=%d items=%d", payload.ClientID, len(payload.Items))

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[order][handler] create failed client_id=%d err=%v", payload.ClientID, err)
		respondError(c, "order", err)
		return
	}
	log.Printf("[order][handler] create success order_id=%d total=%s", created.ID, created.TotalAmount.StringFixed(2))
	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// UpdateStatus godoc
// @Summary      Change the status of an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id      path      int                         true  "Order ID"
// @Param        status  body      request.OrderStatusRequest  true  "Status"
// @Success      200     {object}  response.MessageResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}
	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "order", err)
		return
	}
	if err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.Status); err != nil {
		respondError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "order status updated successfully"})
}

// Delete godoc
// @Summary      Delete an order and its line items
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "order deleted successfully"})
}
