package domain

import "time"

type TransactionType string

const (
	TransactionDebit      TransactionType = "DEBIT"
	TransactionCredit     TransactionType = "CREDIT"
	TransactionRepayment  TransactionType = "LOAN_REPAYMENT"
	TransactionPreclosure TransactionType = "LOAN_PRECLOSURE"
)

type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "SUCCESS"
	TransactionFailed  TransactionStatus = "FAILED"
)

// LedgerTransaction is an append-only audit record of a balance-affecting
// event. Never mutated after creation.
type LedgerTransaction struct {
	ID                  string            `json:"id" db:"id"`
	AccountNumber       int64             `json:"account_number" db:"account_number"`
	CounterpartyAccount int64             `json:"counterparty_account" db:"counterparty_account"`
	Type                TransactionType   `json:"type" db:"type"`
	Amount              float64           `json:"amount" db:"amount"`
	BalanceAfter        float64           `json:"balance_after" db:"balance_after"`
	Status              TransactionStatus `json:"status" db:"status"`
	CreatedAt           time.Time         `json:"created_at" db:"created_at"`
}
