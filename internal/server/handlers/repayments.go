package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/application/repaymentservice"
	"github.com/Nataraj2001/LMS/internal/domain"
)

type RepaymentHandler struct {
	repaymentSvc repaymentservice.IRepaymentService
	logger       zerolog.Logger
}

func NewRepaymentHandler(repaymentSvc repaymentservice.IRepaymentService, logger zerolog.Logger) *RepaymentHandler {
	return &RepaymentHandler{
		repaymentSvc: repaymentSvc,
		logger:       logger,
	}
}

func (h *RepaymentHandler) GetRepayment(c *gin.Context) {
	repayment, err := h.repaymentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, repayment)
}

type processRepaymentRequest struct {
	PaymentMode string `json:"payment_mode" binding:"required"`
}

func (h *RepaymentHandler) ProcessRepayment(c *gin.Context) {
	paymentID := c.Param("id")

	var req processRepaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	repayment, err := h.repaymentSvc.ProcessRepayment(c.Request.Context(), paymentID, req.PaymentMode)
	if err != nil {
		h.logger.Error().Err(err).Str("payment_id", paymentID).Msg("Repayment processing failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, repayment)
}

type precloseRequest struct {
	AccountNumber int64   `json:"account_number" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMode   string  `json:"payment_mode" binding:"required"`
}

func (h *RepaymentHandler) Preclose(c *gin.Context) {
	loanID := c.Param("id")

	var req precloseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	if err := h.repaymentSvc.Preclose(c.Request.Context(), loanID, req.AccountNumber, req.Amount, req.PaymentMode); err != nil {
		h.logger.Error().Err(err).Str("loan_id", loanID).Msg("Preclosure failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"loan_id": loanID,
		"status":  domain.LoanClosed,
	})
}
