package ledgerrepo

import (
	"context"
	"database/sql"

	"github.com/Nataraj2001/LMS/internal/domain"
)

// ILedgerRepository is append-only: transactions are never updated or
// deleted once written.
type ILedgerRepository interface {
	WithTx(tx *sql.Tx) ILedgerRepository
	Append(ctx context.Context, transaction *domain.LedgerTransaction) error
	GetByID(ctx context.Context, id string) (*domain.LedgerTransaction, error)
	ListByAccount(ctx context.Context, accountNumber int64) ([]domain.LedgerTransaction, error)
}
