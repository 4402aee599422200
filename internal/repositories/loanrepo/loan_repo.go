package loanrepo

import (
	"context"
	"database/sql"

	"github.com/Nataraj2001/LMS/internal/domain"
)

type ILoanRepository interface {
	WithTx(tx *sql.Tx) ILoanRepository
	Create(ctx context.Context, application *domain.LoanApplication) error
	GetByID(ctx context.Context, id string) (*domain.LoanApplication, error)
	ListAll(ctx context.Context) ([]domain.LoanApplication, error)
	ListByAccount(ctx context.Context, accountNumber int64) ([]domain.LoanApplication, error)
	ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.LoanApplication, error)
	ListByAccountAndType(ctx context.Context, accountNumber int64, loanType domain.LoanType) ([]domain.LoanApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.LoanStatus) error
}
