package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/erp-backend/internal/dto"
	"github.com/yungbote/erp-backend/internal/http/response"
	"github.com/yungbote/erp-backend/internal/services"
)

// OrderHandler serves orders with their line items. Order totals are computed
// server side; total_amount in request bodies is ignored.
type OrderHandler struct {
	orders services.OrderService
}

func NewOrderHandler(orders services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// GET /api/orders
func (h *OrderHandler) List(c *gin.Context) {
	out, err := h.orders.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if out == nil {
		respondNotFound(c, "order", id)
		return
	}
	response.RespondOK(c, out)
}

// POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.Order
	if !bindBody(c, &req) {
		return
	}
	out, err := h.orders.Create(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	response.RespondCreated(c, location("/api/orders", out.OrderID), out)
}

// PUT /api/orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.Order
	if !bindBody(c, &req) {
		return
	}
	if req.OrderID != id {
		response.RespondError(c, http.StatusBadRequest, "id_mismatch", errIDMismatch)
		return
	}
	updated, err := h.orders.Update(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if !updated {
		respondNotFound(c, "order", id)
		return
	}
	response.RespondNoContent(c)
}

// DELETE /api/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.orders.Delete(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if !deleted {
		respondNotFound(c, "order", id)
		return
	}
	response.RespondNoContent(c)
}
