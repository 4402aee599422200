package repaymentrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/domain"
	"github.com/Nataraj2001/LMS/internal/infrastructure/database"
)

const repaymentColumns = `id, loan_id, payment_date, payment_amount, payment_mode,
	status, due_loan_amount, updated_at`

type repaymentRepository struct {
	db     database.Querier
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) IRepaymentRepository {
	return &repaymentRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *repaymentRepository) WithTx(tx *sql.Tx) IRepaymentRepository {
	return &repaymentRepository{
		db:     tx,
		logger: r.logger,
	}
}

func (r *repaymentRepository) CreateSchedule(ctx context.Context, schedule []domain.LoanRepayment) error {
	for _, installment := range schedule {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO loan_repayments (`+repaymentColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			installment.ID, installment.LoanID, installment.PaymentDate,
			installment.PaymentAmount, installment.PaymentMode, installment.Status,
			installment.DueLoanAmount, installment.UpdatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Str("loan_id", installment.LoanID).Msg("Failed to insert installment")
			return fmt.Errorf("failed to insert installment: %w", err)
		}
	}
	return nil
}

func (r *repaymentRepository) GetByID(ctx context.Context, id string) (*domain.LoanRepayment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+repaymentColumns+` FROM loan_repayments WHERE id = $1`, id)
	return r.scanOne(row, id)
}

func (r *repaymentRepository) LastByLoan(ctx context.Context, loanID string) (*domain.LoanRepayment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+repaymentColumns+` FROM loan_repayments
		WHERE loan_id = $1 ORDER BY payment_date DESC LIMIT 1`, loanID)
	return r.scanOne(row, loanID)
}

func (r *repaymentRepository) scanOne(row *sql.Row, key string) (*domain.LoanRepayment, error) {
	var installment domain.LoanRepayment
	err := row.Scan(&installment.ID, &installment.LoanID, &installment.PaymentDate,
		&installment.PaymentAmount, &installment.PaymentMode, &installment.Status,
		&installment.DueLoanAmount, &installment.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrRepaymentNotFound
		}
		r.logger.Error().Err(err).Str("key", key).Msg("Failed to get repayment")
		return nil, fmt.Errorf("failed to get repayment: %w", err)
	}
	return &installment, nil
}

func (r *repaymentRepository) ListByLoan(ctx context.Context, loanID string) ([]domain.LoanRepayment, error) {
	return r.list(ctx, `
		SELECT `+repaymentColumns+` FROM loan_repayments
		WHERE loan_id = $1 ORDER BY payment_date`, loanID)
}

func (r *repaymentRepository) ListByLoanAndStatus(ctx context.Context, loanID string, status domain.RepaymentStatus) ([]domain.LoanRepayment, error) {
	return r.list(ctx, `
		SELECT `+repaymentColumns+` FROM loan_repayments
		WHERE loan_id = $1 AND status = $2 ORDER BY payment_date`, loanID, status)
}

func (r *repaymentRepository) ListByLoanBetween(ctx context.Context, loanID string, start, end time.Time) ([]domain.LoanRepayment, error) {
	return r.list(ctx, `
		SELECT `+repaymentColumns+` FROM loan_repayments
		WHERE loan_id = $1 AND payment_date BETWEEN $2 AND $3 ORDER BY payment_date`,
		loanID, start, end)
}

func (r *repaymentRepository) ListOverduePending(ctx context.Context, before time.Time) ([]domain.LoanRepayment, error) {
	return r.list(ctx, `
		SELECT `+repaymentColumns+` FROM loan_repayments
		WHERE payment_date < $1 AND status = $2 ORDER BY payment_date`,
		before, domain.RepaymentPending)
}

func (r *repaymentRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.LoanRepayment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to list repayments")
		return nil, fmt.Errorf("failed to list repayments: %w", err)
	}
	defer rows.Close()

	var repayments []domain.LoanRepayment
	for rows.Next() {
		var installment domain.LoanRepayment
		if err := rows.Scan(&installment.ID, &installment.LoanID, &installment.PaymentDate,
			&installment.PaymentAmount, &installment.PaymentMode, &installment.Status,
			&installment.DueLoanAmount, &installment.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan repayment: %w", err)
		}
		repayments = append(repayments, installment)
	}
	return repayments, rows.Err()
}

func (r *repaymentRepository) UpdateStatus(ctx context.Context, id string, status domain.RepaymentStatus, dueLoanAmount float64, paymentMode string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE loan_repayments
		SET status = $2, due_loan_amount = $3, payment_mode = $4, updated_at = NOW()
		WHERE id = $1`,
		id, status, dueLoanAmount, paymentMode,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("payment_id", id).Str("status", string(status)).Msg("Failed to update repayment")
		return fmt.Errorf("failed to update repayment: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrRepaymentNotFound
	}
	return nil
}
