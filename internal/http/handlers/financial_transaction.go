package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/erp-backend/internal/dto"
	"github.com/yungbote/erp-backend/internal/http/response"
	"github.com/yungbote/erp-backend/internal/services"
)

type FinancialTransactionHandler struct {
	financialTransactions services.FinancialTransactionService
}

func NewFinancialTransactionHandler(financialTransactions services.FinancialTransactionService) *FinancialTransactionHandler {
	return &FinancialTransactionHandler{financialTransactions: financialTransactions}
}

// GET /api/financial-transactions
func (h *FinancialTransactionHandler) List(c *gin.Context) {
	out, err := h.financialTransactions.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/financial-transactions/:id
func (h *FinancialTransactionHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := h.financialTransactions.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if out == nil {
		respondNotFound(c, "financial transaction", id)
		return
	}
	response.RespondOK(c, out)
}

// POST /api/financial-transactions
func (h *FinancialTransactionHandler) Create(c *gin.Context) {
	var req dto.FinancialTransaction
	if !bindBody(c, &req) {
		return
	}
	out, err := h.financialTransactions.Create(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	response.RespondCreated(c, location("/api/financial-transactions", out.TransactionID), out)
}

// PUT /api/financial-transactions/:id
func (h *FinancialTransactionHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.FinancialTransaction
	if !bindBody(c, &req) {
		return
	}
	if req.TransactionID != id {
		response.RespondError(c, http.StatusBadRequest, "id_mismatch", errIDMismatch)
		return
	}
	updated, err := h.financialTransactions.Update(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if !updated {
		respondNotFound(c, "financial transaction", id)
		return
	}
	response.RespondNoContent(c)
}

// DELETE /api/financial-transactions/:id
func (h *FinancialTransactionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.financialTransactions.Delete(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if !deleted {
		respondNotFound(c, "financial transaction", id)
		return
	}
	response.RespondNoContent(c)
}
