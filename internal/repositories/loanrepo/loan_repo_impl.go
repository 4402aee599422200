package loanrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/domain"
	"github.com/Nataraj2001/LMS/internal/infrastructure/database"
)

const loanColumns = `id, account_number, loan_amount, loan_type, employment_type,
	annual_income, interest_rate, tenure_years, status, created_at, updated_at`

type loanRepository struct {
	db     database.Querier
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) ILoanRepository {
	return &loanRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *loanRepository) WithTx(tx *sql.Tx) ILoanRepository {
	return &loanRepository{
		db:     tx,
		logger: r.logger,
	}
}

func (r *loanRepository) Create(ctx context.Context, application *domain.LoanApplication) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO loan_applications (`+loanColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		application.ID, application.AccountNumber, application.LoanAmount,
		application.LoanType, application.EmploymentType, application.AnnualIncome,
		application.InterestRate, application.TenureYears, application.Status,
		application.CreatedAt, application.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("loan_id", application.ID).Msg("Failed to create loan application")
		return fmt.Errorf("failed to create loan application: %w", err)
	}
	return nil
}

func (r *loanRepository) GetByID(ctx context.Context, id string) (*domain.LoanApplication, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+loanColumns+` FROM loan_applications WHERE id = $1`, id)

	var app domain.LoanApplication
	err := row.Scan(&app.ID, &app.AccountNumber, &app.LoanAmount, &app.LoanType,
		&app.EmploymentType, &app.AnnualIncome, &app.InterestRate, &app.TenureYears,
		&app.Status, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrLoanNotFound
		}
		r.logger.Error().Err(err).Str("loan_id", id).Msg("Failed to get loan application")
		return nil, fmt.Errorf("failed to get loan application: %w", err)
	}
	return &app, nil
}

func (r *loanRepository) ListAll(ctx context.Context) ([]domain.LoanApplication, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loan_applications ORDER BY created_at DESC`)
}

func (r *loanRepository) ListByAccount(ctx context.Context, accountNumber int64) ([]domain.LoanApplication, error) {
	return r.list(ctx, `
		SELECT `+loanColumns+` FROM loan_applications
		WHERE account_number = $1 ORDER BY created_at DESC`, accountNumber)
}

func (r *loanRepository) ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.LoanApplication, error) {
	return r.list(ctx, `
		SELECT `+loanColumns+` FROM loan_applications
		WHERE status = $1 ORDER BY created_at DESC`, status)
}

func (r *loanRepository) ListByAccountAndType(ctx context.Context, accountNumber int64, loanType domain.LoanType) ([]domain.LoanApplication, error) {
	return r.list(ctx, `
		SELECT `+loanColumns+` FROM loan_applications
		WHERE account_number = $1 AND loan_type = $2 ORDER BY created_at DESC`,
		accountNumber, loanType)
}

func (r *loanRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.LoanApplication, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to list loan applications")
		return nil, fmt.Errorf("failed to list loan applications: %w", err)
	}
	defer rows.Close()

	var applications []domain.LoanApplication
	for rows.Next() {
		var app domain.LoanApplication
		if err := rows.Scan(&app.ID, &app.AccountNumber, &app.LoanAmount, &app.LoanType,
			&app.EmploymentType, &app.AnnualIncome, &app.InterestRate, &app.TenureYears,
			&app.Status, &app.CreatedAt, &app.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan loan application: %w", err)
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

func (r *loanRepository) UpdateStatus(ctx context.Context, id string, status domain.LoanStatus) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE loan_applications SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("loan_id", id).Str("status", string(status)).Msg("Failed to update loan status")
		return fmt.Errorf("failed to update loan status: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrLoanNotFound
	}
	return nil
}
