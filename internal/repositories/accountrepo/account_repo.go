package accountrepo

import (
	"context"
	"database/sql"

	"github.com/Nataraj2001/LMS/internal/domain"
)

type IAccountRepository interface {
	// WithTx returns a copy of the repository bound to tx so the calling
	// service can include account mutations in its unit of work.
	WithTx(tx *sql.Tx) IAccountRepository
	Create(ctx context.Context, account *domain.Account) error
	GetByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	UpdateBalance(ctx context.Context, accountNumber int64, balance float64) error
	UpdateStatus(ctx context.Context, accountNumber int64, status domain.AccountStatus) error
}
