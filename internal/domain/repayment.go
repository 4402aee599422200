package domain

import "time"

type RepaymentStatus string

const (
	RepaymentPending   RepaymentStatus = "PENDING"
	RepaymentCompleted RepaymentStatus = "COMPLETED"
	RepaymentFailed    RepaymentStatus = "FAILED"
)

// PaymentModeScheduled marks installments generated at sanction time that
// have not yet been paid through a concrete channel.
const PaymentModeScheduled = "LOAN_REPAYMENT"

// LoanRepayment is one scheduled installment. DueLoanAmount is the
// outstanding balance at the start of the installment's period; the first
// row of a schedule carries the full principal.
type LoanRepayment struct {
	ID            string          `json:"id" db:"id"`
	LoanID        string          `json:"loan_id" db:"loan_id"`
	PaymentDate   time.Time       `json:"payment_date" db:"payment_date"`
	PaymentAmount float64         `json:"payment_amount" db:"payment_amount"`
	PaymentMode   string          `json:"payment_mode" db:"payment_mode"`
	Status        RepaymentStatus `json:"status" db:"status"`
	DueLoanAmount float64         `json:"due_loan_amount" db:"due_loan_amount"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}
