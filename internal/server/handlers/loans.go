package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/application/loanservice"
	"github.com/Nataraj2001/LMS/internal/application/repaymentservice"
	"github.com/Nataraj2001/LMS/internal/domain"
)

type LoanHandler struct {
	loanSvc      loanservice.ILoanService
	repaymentSvc repaymentservice.IRepaymentService
	logger       zerolog.Logger
}

func NewLoanHandler(loanSvc loanservice.ILoanService, repaymentSvc repaymentservice.IRepaymentService, logger zerolog.Logger) *LoanHandler {
	return &LoanHandler{
		loanSvc:      loanSvc,
		repaymentSvc: repaymentSvc,
		logger:       logger,
	}
}

func (h *LoanHandler) SubmitApplication(c *gin.Context) {
	var application domain.LoanApplication
	if err := c.ShouldBindJSON(&application); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	submitted, err := h.loanSvc.Submit(c.Request.Context(), &application)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submitted)
}

// ListApplications supports optional filtering by status, or by account
// number and loan type together.
func (h *LoanHandler) ListApplications(c *gin.Context) {
	ctx := c.Request.Context()

	if status := c.Query("status"); status != "" {
		loans, err := h.loanSvc.ListByStatus(ctx, domain.LoanStatus(status))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"loans": loans, "total": len(loans)})
		return
	}

	if accountStr := c.Query("account_number"); accountStr != "" {
		accountNumber, err := strconv.ParseInt(accountStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Bad Request",
				"message": "Account number must be numeric",
			})
			return
		}

		var loans []domain.LoanApplication
		if loanType := c.Query("loan_type"); loanType != "" {
			loans, err = h.loanSvc.ListByAccountAndType(ctx, accountNumber, domain.LoanType(loanType))
		} else {
			loans, err = h.loanSvc.ListByAccount(ctx, accountNumber)
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"loans": loans, "total": len(loans)})
		return
	}

	loans, err := h.loanSvc.ListAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"loans": loans, "total": len(loans)})
}

func (h *LoanHandler) GetApplication(c *gin.Context) {
	loan, err := h.loanSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loan)
}

func (h *LoanHandler) GetSanction(c *gin.Context) {
	sanction, err := h.loanSvc.SanctionForLoan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sanction)
}

func (h *LoanHandler) GetRepayments(c *gin.Context) {
	ctx := c.Request.Context()
	loanID := c.Param("id")

	var (
		repayments []domain.LoanRepayment
		err        error
	)
	if status := c.Query("status"); status != "" {
		repayments, err = h.repaymentSvc.ListByLoanAndStatus(ctx, loanID, domain.RepaymentStatus(status))
	} else {
		repayments, err = h.repaymentSvc.ListByLoan(ctx, loanID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"repayments": repayments,
		"total":      len(repayments),
	})
}

type approveRequest struct {
	SanctionedBy string `json:"sanctioned_by" binding:"required"`
}

func (h *LoanHandler) ApproveApplication(c *gin.Context) {
	loanID := c.Param("id")

	var req approveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	sanction, err := h.loanSvc.Approve(c.Request.Context(), loanID, req.SanctionedBy)
	if err != nil {
		h.logger.Error().Err(err).Str("loan_id", loanID).Msg("Approval failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sanction)
}

func (h *LoanHandler) RejectApplication(c *gin.Context) {
	loanID := c.Param("id")

	if err := h.loanSvc.Reject(c.Request.Context(), loanID); err != nil {
		h.logger.Error().Err(err).Str("loan_id", loanID).Msg("Rejection failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"loan_id": loanID,
		"status":  domain.LoanRejected,
	})
}
