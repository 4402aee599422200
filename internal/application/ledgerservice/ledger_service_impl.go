package ledgerservice

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/domain"
	"github.com/Nataraj2001/LMS/internal/infrastructure/database"
	"github.com/Nataraj2001/LMS/internal/repositories/accountrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/ledgerrepo"
	"github.com/Nataraj2001/LMS/pkg/money"
)

type ledgerService struct {
	db          database.TxRunner
	accountRepo accountrepo.IAccountRepository
	ledgerRepo  ledgerrepo.ILedgerRepository
	locks       *accountLocks
	logger      zerolog.Logger
}

func New(
	db database.TxRunner,
	accountRepo accountrepo.IAccountRepository,
	ledgerRepo ledgerrepo.ILedgerRepository,
	logger zerolog.Logger,
) ILedgerService {
	return &ledgerService{
		db:          db,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		locks:       newAccountLocks(),
		logger:      logger,
	}
}

func (s *ledgerService) LockAccount(accountNumber int64) func() {
	return s.locks.lock(accountNumber)
}

func (s *ledgerService) Debit(ctx context.Context, accountNumber int64, amount float64, txType domain.TransactionType, counterparty int64) (float64, error) {
	unlock := s.locks.lock(accountNumber)
	defer unlock()

	var newBalance float64
	err := s.db.WithinTx(ctx, func(tx *sql.Tx) error {
		var err error
		newBalance, err = s.DebitInTx(ctx, tx, accountNumber, amount, txType, counterparty)
		return err
	})
	return newBalance, err
}

func (s *ledgerService) Credit(ctx context.Context, accountNumber int64, amount float64, txType domain.TransactionType, counterparty int64) (float64, error) {
	unlock := s.locks.lock(accountNumber)
	defer unlock()

	var newBalance float64
	err := s.db.WithinTx(ctx, func(tx *sql.Tx) error {
		var err error
		newBalance, err = s.CreditInTx(ctx, tx, accountNumber, amount, txType, counterparty)
		return err
	})
	return newBalance, err
}

func (s *ledgerService) DebitInTx(ctx context.Context, tx *sql.Tx, accountNumber int64, amount float64, txType domain.TransactionType, counterparty int64) (float64, error) {
	if amount <= 0 {
		return 0, domain.NewValidationError("debit amount must be positive")
	}

	accounts := s.accountRepo.WithTx(tx)
	account, err := accounts.GetByNumber(ctx, accountNumber)
	if err != nil {
		return 0, err
	}

	if account.Balance < amount {
		// The failed attempt is still auditable. The row is appended outside
		// the unit of work so it survives the rollback.
		s.appendAudit(ctx, s.ledgerRepo, accountNumber, counterparty, txType, amount, account.Balance, domain.TransactionFailed)
		s.logger.Warn().
			Int64("account_number", accountNumber).
			Float64("amount", amount).
			Float64("balance", account.Balance).
			Msg("Debit refused: insufficient balance")
		return account.Balance, domain.ErrInsufficientFunds
	}

	newBalance := money.Round2(account.Balance - amount)
	if err := accounts.UpdateBalance(ctx, accountNumber, newBalance); err != nil {
		return 0, err
	}
	if err := s.appendAudit(ctx, s.ledgerRepo.WithTx(tx), accountNumber, counterparty, txType, amount, newBalance, domain.TransactionSuccess); err != nil {
		return 0, err
	}

	return newBalance, nil
}

func (s *ledgerService) CreditInTx(ctx context.Context, tx *sql.Tx, accountNumber int64, amount float64, txType domain.TransactionType, counterparty int64) (float64, error) {
	if amount <= 0 {
		return 0, domain.NewValidationError("credit amount must be positive")
	}

	accounts := s.accountRepo.WithTx(tx)
	account, err := accounts.GetByNumber(ctx, accountNumber)
	if err != nil {
		return 0, err
	}

	newBalance := money.Round2(account.Balance + amount)
	if err := accounts.UpdateBalance(ctx, accountNumber, newBalance); err != nil {
		return 0, err
	}
	if err := s.appendAudit(ctx, s.ledgerRepo.WithTx(tx), accountNumber, counterparty, txType, amount, newBalance, domain.TransactionSuccess); err != nil {
		return 0, err
	}

	return newBalance, nil
}

func (s *ledgerService) Transfer(ctx context.Context, fromAccount, toAccount int64, amount float64) error {
	if fromAccount == toAccount {
		return domain.NewValidationError("cannot transfer to the same account")
	}

	// Both accounts must resolve before any money moves.
	if _, err := s.accountRepo.GetByNumber(ctx, fromAccount); err != nil {
		return err
	}
	if _, err := s.accountRepo.GetByNumber(ctx, toAccount); err != nil {
		return err
	}

	unlock := s.locks.lockPair(fromAccount, toAccount)
	defer unlock()

	err := s.db.WithinTx(ctx, func(tx *sql.Tx) error {
		if _, err := s.DebitInTx(ctx, tx, fromAccount, amount, domain.TransactionDebit, toAccount); err != nil {
			return err
		}
		if _, err := s.CreditInTx(ctx, tx, toAccount, amount, domain.TransactionCredit, fromAccount); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).
			Int64("from_account", fromAccount).
			Int64("to_account", toAccount).
			Float64("amount", amount).
			Msg("Transfer failed")
		return err
	}

	s.logger.Info().
		Int64("from_account", fromAccount).
		Int64("to_account", toAccount).
		Float64("amount", amount).
		Msg("Transfer completed")
	return nil
}

func (s *ledgerService) ManualPayment(ctx context.Context, accountNumber int64, amount float64) error {
	_, err := s.Debit(ctx, accountNumber, amount, domain.TransactionDebit, domain.BankAccount)
	return err
}

func (s *ledgerService) TransactionsForAccount(ctx context.Context, accountNumber int64) ([]domain.LedgerTransaction, error) {
	return s.ledgerRepo.ListByAccount(ctx, accountNumber)
}

func (s *ledgerService) TransactionByID(ctx context.Context, id string) (*domain.LedgerTransaction, error) {
	return s.ledgerRepo.GetByID(ctx, id)
}

func (s *ledgerService) appendAudit(ctx context.Context, repo ledgerrepo.ILedgerRepository, accountNumber, counterparty int64, txType domain.TransactionType, amount, balanceAfter float64, status domain.TransactionStatus) error {
	return repo.Append(ctx, &domain.LedgerTransaction{
		ID:                  uuid.New().String(),
		AccountNumber:       accountNumber,
		CounterpartyAccount: counterparty,
		Type:                txType,
		Amount:              amount,
		BalanceAfter:        balanceAfter,
		Status:              status,
		CreatedAt:           time.Now(),
	})
}
