package accountrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/domain"
	"github.com/Nataraj2001/LMS/internal/infrastructure/database"
)

type accountRepository struct {
	db     database.Querier
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) IAccountRepository {
	return &accountRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *accountRepository) WithTx(tx *sql.Tx) IAccountRepository {
	return &accountRepository{
		db:     tx,
		logger: r.logger,
	}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (account_number, holder_name, email, balance, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		account.AccountNumber, account.HolderName, account.Email,
		account.Balance, account.Status, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Int64("account_number", account.AccountNumber).Msg("Failed to create account")
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *accountRepository) GetByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT account_number, holder_name, email, balance, status, created_at, updated_at
		FROM accounts WHERE account_number = $1`,
		accountNumber,
	)
	return r.scanAccount(row, accountNumber)
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT account_number, holder_name, email, balance, status, created_at, updated_at
		FROM accounts WHERE email = $1`,
		email,
	)
	return r.scanAccount(row, 0)
}

func (r *accountRepository) scanAccount(row *sql.Row, accountNumber int64) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(&account.AccountNumber, &account.HolderName, &account.Email,
		&account.Balance, &account.Status, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrAccountNotFound
		}
		r.logger.Error().Err(err).Int64("account_number", accountNumber).Msg("Failed to get account")
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) UpdateBalance(ctx context.Context, accountNumber int64, balance float64) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE accounts SET balance = $2, updated_at = NOW() WHERE account_number = $1`,
		accountNumber, balance,
	)
	if err != nil {
		r.logger.Error().Err(err).Int64("account_number", accountNumber).Msg("Failed to update balance")
		return fmt.Errorf("failed to update balance: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) UpdateStatus(ctx context.Context, accountNumber int64, status domain.AccountStatus) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE accounts SET status = $2, updated_at = NOW() WHERE account_number = $1`,
		accountNumber, status,
	)
	if err != nil {
		r.logger.Error().Err(err).Int64("account_number", accountNumber).Msg("Failed to update account status")
		return fmt.Errorf("failed to update account status: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
