package ledgerservice

import (
	"context"
	"database/sql"

	"github.com/Nataraj2001/LMS/internal/domain"
)

// ILedgerService is the single mutation path for account balances. Every
// balance change appends a ledger transaction, and all mutations for one
// account are serialized.
type ILedgerService interface {
	// Debit withdraws amount from the account. On insufficient funds the
	// balance is untouched, a FAILED ledger row is still recorded and
	// domain.ErrInsufficientFunds is returned.
	Debit(ctx context.Context, accountNumber int64, amount float64, txType domain.TransactionType, counterparty int64) (float64, error)
	Credit(ctx context.Context, accountNumber int64, amount float64, txType domain.TransactionType, counterparty int64) (float64, error)
	Transfer(ctx context.Context, fromAccount, toAccount int64, amount float64) error
	ManualPayment(ctx context.Context, accountNumber int64, amount float64) error

	// DebitInTx and CreditInTx join a caller-managed unit of work. The caller
	// must hold the account lock (LockAccount) for the duration of the tx.
	DebitInTx(ctx context.Context, tx *sql.Tx, accountNumber int64, amount float64, txType domain.TransactionType, counterparty int64) (float64, error)
	CreditInTx(ctx context.Context, tx *sql.Tx, accountNumber int64, amount float64, txType domain.TransactionType, counterparty int64) (float64, error)
	LockAccount(accountNumber int64) (unlock func())

	TransactionsForAccount(ctx context.Context, accountNumber int64) ([]domain.LedgerTransaction, error)
	TransactionByID(ctx context.Context, id string) (*domain.LedgerTransaction, error)
}
