package accountservice

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/domain"
	"github.com/Nataraj2001/LMS/internal/repositories/accountrepo"
	"github.com/Nataraj2001/LMS/pkg/money"
)

type accountService struct {
	accountRepo accountrepo.IAccountRepository
	notifier    domain.NotificationSender
	logger      zerolog.Logger
}

func New(accountRepo accountrepo.IAccountRepository, notifier domain.NotificationSender, logger zerolog.Logger) IAccountService {
	return &accountService{
		accountRepo: accountRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *accountService) Open(ctx context.Context, holderName, email string, openingBalance float64) (*domain.Account, error) {
	if holderName == "" {
		return nil, domain.NewValidationError("holder name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	if openingBalance < 0 {
		return nil, domain.NewValidationError("opening balance cannot be negative")
	}

	number, err := randomAccountNumber()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &domain.Account{
		AccountNumber: number,
		HolderName:    holderName,
		Email:         email,
		Balance:       money.Round2(openingBalance),
		Status:        domain.AccountActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("account_number", number).Str("email", email).Msg("Account opened")

	if err := s.notifier.SendAccountCreated(ctx, account); err != nil {
		s.logger.Error().Err(err).Int64("account_number", number).Msg("Failed to send welcome email")
	}
	return account, nil
}

func (s *accountService) GetByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	return s.accountRepo.GetByNumber(ctx, accountNumber)
}

func (s *accountService) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.accountRepo.GetByEmail(ctx, email)
}

func (s *accountService) Close(ctx context.Context, accountNumber int64) error {
	if _, err := s.accountRepo.GetByNumber(ctx, accountNumber); err != nil {
		return err
	}
	if err := s.accountRepo.UpdateStatus(ctx, accountNumber, domain.AccountClosed); err != nil {
		return err
	}
	s.logger.Info().Int64("account_number", accountNumber).Msg("Account closed")
	return nil
}

// randomAccountNumber returns a 10 digit account number. Collisions surface
// as a unique constraint violation on insert.
func randomAccountNumber() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000000000))
	if err != nil {
		return 0, err
	}
	return n.Int64() + 1000000000, nil
}
