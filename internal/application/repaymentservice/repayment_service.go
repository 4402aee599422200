package repaymentservice

import (
	"context"

	"github.com/Nataraj2001/LMS/internal/domain"
)

type IRepaymentService interface {
	GetByID(ctx context.Context, paymentID string) (*domain.LoanRepayment, error)
	ListByLoan(ctx context.Context, loanID string) ([]domain.LoanRepayment, error)
	ListByLoanAndStatus(ctx context.Context, loanID string, status domain.RepaymentStatus) ([]domain.LoanRepayment, error)
	LastByLoan(ctx context.Context, loanID string) (*domain.LoanRepayment, error)

	// ProcessRepayment settles one pending installment: debits the borrower,
	// records a LOAN_REPAYMENT transaction, marks the installment COMPLETED
	// and closes the sanction when the schedule has no pending rows left.
	ProcessRepayment(ctx context.Context, paymentID, paymentMode string) (*domain.LoanRepayment, error)

	// Preclose settles every remaining installment with a single debit and
	// closes both the application and the sanction.
	Preclose(ctx context.Context, loanID string, accountNumber int64, amount float64, paymentMode string) error

	// RunDueReminderSweep sends a reminder for every overdue pending
	// installment. Safe to re-run; re-running re-sends reminders.
	RunDueReminderSweep(ctx context.Context) error
	// StartDueReminderSweep blocks, running the sweep on the configured
	// interval until ctx is cancelled.
	StartDueReminderSweep(ctx context.Context) error
}
