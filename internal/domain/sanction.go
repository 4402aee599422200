package domain

import "time"

type SanctionStatus string

const (
	SanctionApproved SanctionStatus = "APPROVED"
	SanctionClosed   SanctionStatus = "CLOSED"
)

// LoanSanction fixes the terms of an approved loan. Created exactly once per
// approved application; only the status changes afterwards.
type LoanSanction struct {
	ID                 string         `json:"id" db:"id"`
	LoanID             string         `json:"loan_id" db:"loan_id"`
	SanctionAmount     float64        `json:"sanction_amount" db:"sanction_amount"`
	SanctionDate       time.Time      `json:"sanction_date" db:"sanction_date"`
	LoanStartDate      time.Time      `json:"loan_start_date" db:"loan_start_date"`
	LoanEndDate        time.Time      `json:"loan_end_date" db:"loan_end_date"`
	InterestRate       float64        `json:"interest_rate" db:"interest_rate"`
	MonthlyInstallment float64        `json:"monthly_installment" db:"monthly_installment"`
	Status             SanctionStatus `json:"status" db:"status"`
	SanctionedBy       string         `json:"sanctioned_by" db:"sanctioned_by"`
	CreatedAt          time.Time      `json:"created_at" db:"created_at"`
}
