package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/application/accountservice"
	"github.com/Nataraj2001/LMS/internal/application/authservice"
	"github.com/Nataraj2001/LMS/internal/application/ledgerservice"
	"github.com/Nataraj2001/LMS/internal/application/loanservice"
	"github.com/Nataraj2001/LMS/internal/application/otpservice"
	"github.com/Nataraj2001/LMS/internal/application/repaymentservice"
	"github.com/Nataraj2001/LMS/internal/domain"
	"github.com/Nataraj2001/LMS/internal/server/middleware"
	"github.com/Nataraj2001/LMS/pkg/config"
)

type Handlers struct {
	AccountSvc   accountservice.IAccountService
	LoanSvc      loanservice.ILoanService
	RepaymentSvc repaymentservice.IRepaymentService
	LedgerSvc    ledgerservice.ILedgerService
	OTPSvc       otpservice.IOTPService
	AuthSvc      authservice.IAuthService
	Logger       zerolog.Logger
	Config       *config.Config
}

func New(
	accountSvc accountservice.IAccountService,
	loanSvc loanservice.ILoanService,
	repaymentSvc repaymentservice.IRepaymentService,
	ledgerSvc ledgerservice.ILedgerService,
	otpSvc otpservice.IOTPService,
	authSvc authservice.IAuthService,
	logger zerolog.Logger,
	config *config.Config,
) *Handlers {
	return &Handlers{
		AccountSvc:   accountSvc,
		LoanSvc:      loanSvc,
		RepaymentSvc: repaymentSvc,
		LedgerSvc:    ledgerSvc,
		OTPSvc:       otpSvc,
		AuthSvc:      authSvc,
		Logger:       logger,
		Config:       config,
	}
}

func (h *Handlers) SetupHandlers(router *gin.Engine) {
	mw := middleware.NewMiddleware(h.AuthSvc, h.Logger)
	mw.SetupMiddleware(router)

	accountHandler := NewAccountHandler(h.AccountSvc, h.LedgerSvc, h.LoanSvc, h.Logger)
	loanHandler := NewLoanHandler(h.LoanSvc, h.RepaymentSvc, h.Logger)
	repaymentHandler := NewRepaymentHandler(h.RepaymentSvc, h.Logger)
	transactionHandler := NewTransactionHandler(h.LedgerSvc, h.Logger)
	authHandler := NewAuthHandler(h.OTPSvc, h.AuthSvc, h.Config.JWT.AdminEmails, h.Logger)
	healthHandler := NewHealthHandler()

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/otp", authHandler.RequestOTP)
			auth.POST("/login", authHandler.Login)
		}

		accounts := v1.Group("/accounts")
		{
			accounts.POST("", accountHandler.OpenAccount)
			accounts.GET("/:account_number", accountHandler.GetAccount)
			accounts.GET("/:account_number/transactions", accountHandler.GetTransactions)
			accounts.GET("/:account_number/loans", accountHandler.GetLoans)
		}

		loans := v1.Group("/loans")
		{
			loans.POST("", loanHandler.SubmitApplication)
			loans.GET("", loanHandler.ListApplications)
			loans.GET("/:id", loanHandler.GetApplication)
			loans.GET("/:id/sanction", loanHandler.GetSanction)
			loans.GET("/:id/repayments", loanHandler.GetRepayments)
			loans.POST("/:id/preclose", repaymentHandler.Preclose)

			admin := loans.Group("", mw.AuthMiddleware(domain.RoleAdmin))
			{
				admin.PUT("/:id/approve", loanHandler.ApproveApplication)
				admin.PUT("/:id/reject", loanHandler.RejectApplication)
			}
		}

		repayments := v1.Group("/repayments")
		{
			repayments.GET("/:id", repaymentHandler.GetRepayment)
			repayments.POST("/:id/process", repaymentHandler.ProcessRepayment)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("/:id", transactionHandler.GetTransaction)
			transactions.POST("/transfer", transactionHandler.Transfer)
			transactions.POST("/payment", transactionHandler.ManualPayment)
		}
	}
}
