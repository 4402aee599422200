package loanservice

import (
	"context"

	"github.com/Nataraj2001/LMS/internal/domain"
)

type ILoanService interface {
	// Submit validates eligibility and persists the application in PENDING.
	Submit(ctx context.Context, application *domain.LoanApplication) (*domain.LoanApplication, error)
	GetByID(ctx context.Context, loanID string) (*domain.LoanApplication, error)
	ListAll(ctx context.Context) ([]domain.LoanApplication, error)
	ListByAccount(ctx context.Context, accountNumber int64) ([]domain.LoanApplication, error)
	ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.LoanApplication, error)
	ListByAccountAndType(ctx context.Context, accountNumber int64, loanType domain.LoanType) ([]domain.LoanApplication, error)

	// Approve sanctions a pending application: it fixes the terms,
	// materializes the full repayment schedule and disburses the amount to
	// the borrower's account, all as one unit of work.
	Approve(ctx context.Context, loanID, sanctionedBy string) (*domain.LoanSanction, error)
	Reject(ctx context.Context, loanID string) error
	SanctionForLoan(ctx context.Context, loanID string) (*domain.LoanSanction, error)
}
