package sanctionrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/domain"
	"github.com/Nataraj2001/LMS/internal/infrastructure/database"
)

type sanctionRepository struct {
	db     database.Querier
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) ISanctionRepository {
	return &sanctionRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *sanctionRepository) WithTx(tx *sql.Tx) ISanctionRepository {
	return &sanctionRepository{
		db:     tx,
		logger: r.logger,
	}
}

func (r *sanctionRepository) Create(ctx context.Context, sanction *domain.LoanSanction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO loan_sanctions (id, loan_id, sanction_amount, sanction_date,
			loan_start_date, loan_end_date, interest_rate, monthly_installment,
			status, sanctioned_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		sanction.ID, sanction.LoanID, sanction.SanctionAmount, sanction.SanctionDate,
		sanction.LoanStartDate, sanction.LoanEndDate, sanction.InterestRate,
		sanction.MonthlyInstallment, sanction.Status, sanction.SanctionedBy,
		sanction.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("loan_id", sanction.LoanID).Msg("Failed to create loan sanction")
		return fmt.Errorf("failed to create loan sanction: %w", err)
	}
	return nil
}

func (r *sanctionRepository) GetByLoanID(ctx context.Context, loanID string) (*domain.LoanSanction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, loan_id, sanction_amount, sanction_date, loan_start_date,
			loan_end_date, interest_rate, monthly_installment, status,
			sanctioned_by, created_at
		FROM loan_sanctions WHERE loan_id = $1`,
		loanID,
	)

	var sanction domain.LoanSanction
	err := row.Scan(&sanction.ID, &sanction.LoanID, &sanction.SanctionAmount,
		&sanction.SanctionDate, &sanction.LoanStartDate, &sanction.LoanEndDate,
		&sanction.InterestRate, &sanction.MonthlyInstallment, &sanction.Status,
		&sanction.SanctionedBy, &sanction.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrSanctionNotFound
		}
		r.logger.Error().Err(err).Str("loan_id", loanID).Msg("Failed to get loan sanction")
		return nil, fmt.Errorf("failed to get loan sanction: %w", err)
	}
	return &sanction, nil
}

func (r *sanctionRepository) UpdateStatus(ctx context.Context, id string, status domain.SanctionStatus) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE loan_sanctions SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("sanction_id", id).Msg("Failed to update sanction status")
		return fmt.Errorf("failed to update sanction status: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrSanctionNotFound
	}
	return nil
}
