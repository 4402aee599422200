package ledgerrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/domain"
	"github.com/Nataraj2001/LMS/internal/infrastructure/database"
)

const transactionColumns = `id, account_number, counterparty_account, type,
	amount, balance_after, status, created_at`

type ledgerRepository struct {
	db     database.Querier
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) ILedgerRepository {
	return &ledgerRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *ledgerRepository) WithTx(tx *sql.Tx) ILedgerRepository {
	return &ledgerRepository{
		db:     tx,
		logger: r.logger,
	}
}

func (r *ledgerRepository) Append(ctx context.Context, transaction *domain.LedgerTransaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ledger_transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		transaction.ID, transaction.AccountNumber, transaction.CounterpartyAccount,
		transaction.Type, transaction.Amount, transaction.BalanceAfter,
		transaction.Status, transaction.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Int64("account_number", transaction.AccountNumber).
			Str("type", string(transaction.Type)).
			Msg("Failed to append ledger transaction")
		return fmt.Errorf("failed to append ledger transaction: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetByID(ctx context.Context, id string) (*domain.LedgerTransaction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+transactionColumns+` FROM ledger_transactions WHERE id = $1`, id)

	var transaction domain.LedgerTransaction
	err := row.Scan(&transaction.ID, &transaction.AccountNumber,
		&transaction.CounterpartyAccount, &transaction.Type, &transaction.Amount,
		&transaction.BalanceAfter, &transaction.Status, &transaction.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("ledger transaction %s not found", id)
		}
		r.logger.Error().Err(err).Str("id", id).Msg("Failed to get ledger transaction")
		return nil, fmt.Errorf("failed to get ledger transaction: %w", err)
	}
	return &transaction, nil
}

func (r *ledgerRepository) ListByAccount(ctx context.Context, accountNumber int64) ([]domain.LedgerTransaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+transactionColumns+` FROM ledger_transactions
		WHERE account_number = $1 ORDER BY created_at DESC`, accountNumber)
	if err != nil {
		r.logger.Error().Err(err).Int64("account_number", accountNumber).Msg("Failed to list ledger transactions")
		return nil, fmt.Errorf("failed to list ledger transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.LedgerTransaction
	for rows.Next() {
		var transaction domain.LedgerTransaction
		if err := rows.Scan(&transaction.ID, &transaction.AccountNumber,
			&transaction.CounterpartyAccount, &transaction.Type, &transaction.Amount,
			&transaction.BalanceAfter, &transaction.Status, &transaction.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}
