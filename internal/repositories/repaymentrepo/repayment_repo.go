package repaymentrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/Nataraj2001/LMS/internal/domain"
)

type IRepaymentRepository interface {
	WithTx(tx *sql.Tx) IRepaymentRepository
	// CreateSchedule inserts the full installment sequence for one loan.
	CreateSchedule(ctx context.Context, schedule []domain.LoanRepayment) error
	GetByID(ctx context.Context, id string) (*domain.LoanRepayment, error)
	ListByLoan(ctx context.Context, loanID string) ([]domain.LoanRepayment, error)
	ListByLoanAndStatus(ctx context.Context, loanID string, status domain.RepaymentStatus) ([]domain.LoanRepayment, error)
	ListByLoanBetween(ctx context.Context, loanID string, start, end time.Time) ([]domain.LoanRepayment, error)
	ListOverduePending(ctx context.Context, before time.Time) ([]domain.LoanRepayment, error)
	LastByLoan(ctx context.Context, loanID string) (*domain.LoanRepayment, error)
	UpdateStatus(ctx context.Context, id string, status domain.RepaymentStatus, dueLoanAmount float64, paymentMode string) error
}
