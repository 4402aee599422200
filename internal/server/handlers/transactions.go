package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/application/ledgerservice"
)

type TransactionHandler struct {
	ledgerSvc ledgerservice.ILedgerService
	logger    zerolog.Logger
}

func NewTransactionHandler(ledgerSvc ledgerservice.ILedgerService, logger zerolog.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledgerSvc: ledgerSvc,
		logger:    logger,
	}
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transaction, err := h.ledgerSvc.TransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

type transferRequest struct {
	FromAccount int64   `json:"from_account" binding:"required"`
	ToAccount   int64   `json:"to_account" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

func (h *TransactionHandler) Transfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	if err := h.ledgerSvc.Transfer(c.Request.Context(), req.FromAccount, req.ToAccount, req.Amount); err != nil {
		h.logger.Error().Err(err).
			Int64("from_account", req.FromAccount).
			Int64("to_account", req.ToAccount).
			Msg("Transfer failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from_account": req.FromAccount,
		"to_account":   req.ToAccount,
		"amount":       req.Amount,
		"status":       "SUCCESS",
	})
}

type manualPaymentRequest struct {
	AccountNumber int64   `json:"account_number" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
}

func (h *TransactionHandler) ManualPayment(c *gin.Context) {
	var req manualPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	if err := h.ledgerSvc.ManualPayment(c.Request.Context(), req.AccountNumber, req.Amount); err != nil {
		h.logger.Error().Err(err).Int64("account_number", req.AccountNumber).Msg("Manual payment failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account_number": req.AccountNumber,
		"amount":         req.Amount,
		"status":         "SUCCESS",
	})
}
