package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/application/accountservice"
	"github.com/Nataraj2001/LMS/internal/application/ledgerservice"
	"github.com/Nataraj2001/LMS/internal/application/loanservice"
)

type AccountHandler struct {
	accountSvc accountservice.IAccountService
	ledgerSvc  ledgerservice.ILedgerService
	loanSvc    loanservice.ILoanService
	logger     zerolog.Logger
}

func NewAccountHandler(accountSvc accountservice.IAccountService, ledgerSvc ledgerservice.ILedgerService, loanSvc loanservice.ILoanService, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		accountSvc: accountSvc,
		ledgerSvc:  ledgerSvc,
		loanSvc:    loanSvc,
		logger:     logger,
	}
}

type openAccountRequest struct {
	HolderName     string  `json:"holder_name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	OpeningBalance float64 `json:"opening_balance"`
}

func (h *AccountHandler) OpenAccount(c *gin.Context) {
	var req openAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	account, err := h.accountSvc.Open(c.Request.Context(), req.HolderName, req.Email, req.OpeningBalance)
	if err != nil {
		h.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to open account")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountNumber, ok := parseAccountNumber(c)
	if !ok {
		return
	}

	account, err := h.accountSvc.GetByNumber(c.Request.Context(), accountNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) GetTransactions(c *gin.Context) {
	accountNumber, ok := parseAccountNumber(c)
	if !ok {
		return
	}

	transactions, err := h.ledgerSvc.TransactionsForAccount(c.Request.Context(), accountNumber)
	if err != nil {
		h.logger.Error().Err(err).Int64("account_number", accountNumber).Msg("Failed to list transactions")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": transactions,
		"total":        len(transactions),
	})
}

func (h *AccountHandler) GetLoans(c *gin.Context) {
	accountNumber, ok := parseAccountNumber(c)
	if !ok {
		return
	}

	loans, err := h.loanSvc.ListByAccount(c.Request.Context(), accountNumber)
	if err != nil {
		h.logger.Error().Err(err).Int64("account_number", accountNumber).Msg("Failed to list loans")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"loans": loans,
		"total": len(loans),
	})
}

func parseAccountNumber(c *gin.Context) (int64, bool) {
	accountNumber, err := strconv.ParseInt(c.Param("account_number"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "Account number must be numeric",
		})
		return 0, false
	}
	return accountNumber, true
}
