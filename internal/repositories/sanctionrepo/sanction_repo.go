package sanctionrepo

import (
	"context"
	"database/sql"

	"github.com/Nataraj2001/LMS/internal/domain"
)

type ISanctionRepository interface {
	WithTx(tx *sql.Tx) ISanctionRepository
	Create(ctx context.Context, sanction *domain.LoanSanction) error
	GetByLoanID(ctx context.Context, loanID string) (*domain.LoanSanction, error)
	UpdateStatus(ctx context.Context, id string, status domain.SanctionStatus) error
}
