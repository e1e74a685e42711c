package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/erp-backend/internal/dto"
	"github.com/yungbote/erp-backend/internal/http/response"
	"github.com/yungbote/erp-backend/internal/services"
)

type ProductHandler struct {
	products services.ProductService
}

func NewProductHandler(products services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	out, err := h.products.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if out == nil {
		respondNotFound(c, "product", id)
		return
	}
	response.RespondOK(c, out)
}

// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.Product
	if !bindBody(c, &req) {
		return
	}
	out, err := h.products.Create(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	response.RespondCreated(c, location("/api/products", out.ProductID), out)
}

// PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.Product
	if !bindBody(c, &req) {
		return
	}
	if req.ProductID != id {
		response.RespondError(c, http.StatusBadRequest, "id_mismatch", errIDMismatch)
		return
	}
	updated, err := h.products.Update(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if !updated {
		respondNotFound(c, "product", id)
		return
	}
	response.RespondNoContent(c)
}

// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.products.Delete(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if !deleted {
		respondNotFound(c, "product", id)
		return
	}
	response.RespondNoContent(c)
}
