package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/erp-backend/internal/dto"
	"github.com/yungbote/erp-backend/internal/http/response"
	"github.com/yungbote/erp-backend/internal/services"
)

type CustomerHandler struct {
	customers services.CustomerService
}

func NewCustomerHandler(customers services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// GET /api/customers
func (h *CustomerHandler) List(c *gin.Context) {
	out, err := h.customers.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := h.customers.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if out == nil {
		respondNotFound(c, "customer", id)
		return
	}
	response.RespondOK(c, out)
}

// POST /api/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.Customer
	if !bindBody(c, &req) {
		return
	}
	out, err := h.customers.Create(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	response.RespondCreated(c, location("/api/customers", out.CustomerID), out)
}

// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.Customer
	if !bindBody(c, &req) {
		return
	}
	if req.CustomerID != id {
		response.RespondError(c, http.StatusBadRequest, "id_mismatch", errIDMismatch)
		return
	}
	updated, err := h.customers.Update(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if !updated {
		respondNotFound(c, "customer", id)
		return
	}
	response.RespondNoContent(c)
}

// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.customers.Delete(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if !deleted {
		respondNotFound(c, "customer", id)
		return
	}
	response.RespondNoContent(c)
}
