package accountservice

import (
	"context"

	"github.com/Nataraj2001/LMS/internal/domain"
)

type IAccountService interface {
	// Open creates an ACTIVE account with the given opening balance and
	// returns it with its assigned account number.
	Open(ctx context.Context, holderName, email string, openingBalance float64) (*domain.Account, error)
	GetByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Close(ctx context.Context, accountNumber int64) error
}
