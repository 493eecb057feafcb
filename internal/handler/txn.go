package handler

import (
	"net/http"

	"github.com/germangodoy93/FinanzasBackend/internal/models"
	"github.com/germangodoy93/FinanzasBackend/internal/service"
	"github.com/germangodoy93/FinanzasBackend/internal/util"

	"github.com/gin-gonic/gin"
)

// TxnHandler 负责流水 CRUD 接口
type TxnHandler struct {
	Ledger *service.LedgerService
}

func NewTxnHandler(ledger *service.LedgerService) *TxnHandler {
	return &TxnHandler{Ledger: ledger}
}

// List returns the whole ledger, newest inserted first.
func (h *TxnHandler) List(c *gin.Context) {
	txns, err := h.Ledger.List(c.Request.Context())
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "db error")
		return
	}
	c.JSON(http.StatusOK, txns)
}

// Create stores a partial transaction; id and (when absent) date are assigned
// server-side. Responds with the row as stored.
func (h *TxnHandler) Create(c *gin.Context) {
	var in models.Transaction
	if err := c.ShouldBindJSON(&in); err != nil {
		util.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, err := h.Ledger.Create(c.Request.Context(), in)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "db error")
		return
	}
	c.JSON(http.StatusOK, txn)
}

// Delete removes a row by id. Reports success even when the id never existed.
func (h *TxnHandler) Delete(c *gin.Context) {
	if _, err := h.Ledger.Delete(c.Request.Context(), c.Param("id")); err != nil {
		util.Fail(c, http.StatusInternalServerError, "db error")
		return
	}
	util.OK(c)
}
