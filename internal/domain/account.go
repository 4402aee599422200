package domain

import "time"

type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
	AccountClosed   AccountStatus = "CLOSED"
)

// BankAccount is the sentinel counterparty for bank-internal movements
// (disbursements, repayments, preclosures).
const BankAccount int64 = 0

type Account struct {
	AccountNumber int64         `json:"account_number" db:"account_number"`
	HolderName    string        `json:"holder_name" db:"holder_name"`
	Email         string        `json:"email" db:"email"`
	Balance       float64       `json:"balance" db:"balance"`
	Status        AccountStatus `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}
