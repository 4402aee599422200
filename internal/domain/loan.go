package domain

import "time"

type LoanType string

const (
	LoanPersonal   LoanType = "PERSONAL"
	LoanBusiness   LoanType = "BUSINESS"
	LoanEducation  LoanType = "EDUCATION"
	LoanHome       LoanType = "HOME"
	LoanCar        LoanType = "CAR"
	LoanTwoWheeler LoanType = "TWO_WHEELER"
	LoanGold       LoanType = "GOLD"
)

type EmploymentType string

const (
	EmploymentSalaried     EmploymentType = "SALARIED"
	EmploymentSelfEmployed EmploymentType = "SELF_EMPLOYED"
	EmploymentStudent      EmploymentType = "STUDENT"
)

type LoanStatus string

const (
	LoanPending  LoanStatus = "PENDING"
	LoanApproved LoanStatus = "APPROVED"
	LoanRejected LoanStatus = "REJECTED"
	LoanClosed   LoanStatus = "CLOSED"
)

type LoanApplication struct {
	ID             string         `json:"id" db:"id"`
	AccountNumber  int64          `json:"account_number" db:"account_number" binding:"required"`
	LoanAmount     float64        `json:"loan_amount" db:"loan_amount" binding:"required"`
	LoanType       LoanType       `json:"loan_type" db:"loan_type" binding:"required"`
	EmploymentType EmploymentType `json:"employment_type" db:"employment_type" binding:"required"`
	AnnualIncome   float64        `json:"annual_income" db:"annual_income"`
	InterestRate   float64        `json:"interest_rate" db:"interest_rate" binding:"required"`
	TenureYears    int            `json:"tenure_years" db:"tenure_years" binding:"required"`
	Status         LoanStatus     `json:"status" db:"status"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

// ValidLoanType reports whether t is one of the closed loan type values.
func ValidLoanType(t LoanType) bool {
	switch t {
	case LoanPersonal, LoanBusiness, LoanEducation, LoanHome, LoanCar, LoanTwoWheeler, LoanGold:
		return true
	}
	return false
}

// ValidEmploymentType reports whether t is one of the closed employment values.
func ValidEmploymentType(t EmploymentType) bool {
	switch t {
	case EmploymentSalaried, EmploymentSelfEmployed, EmploymentStudent:
		return true
	}
	return false
}
