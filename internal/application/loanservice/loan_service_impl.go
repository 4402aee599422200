package loanservice

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/application/ledgerservice"
	"github.com/Nataraj2001/LMS/internal/domain"
	"github.com/Nataraj2001/LMS/internal/infrastructure/database"
	"github.com/Nataraj2001/LMS/internal/repositories/accountrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/loanrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/repaymentrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/sanctionrepo"
	"github.com/Nataraj2001/LMS/pkg/amortization"
	"github.com/Nataraj2001/LMS/pkg/money"
)

type loanService struct {
	db            database.TxRunner
	loanRepo      loanrepo.ILoanRepository
	sanctionRepo  sanctionrepo.ISanctionRepository
	repaymentRepo repaymentrepo.IRepaymentRepository
	accountRepo   accountrepo.IAccountRepository
	ledgerSvc     ledgerservice.ILedgerService
	notifier      domain.NotificationSender
	logger        zerolog.Logger
}

func New(
	db database.TxRunner,
	loanRepo loanrepo.ILoanRepository,
	sanctionRepo sanctionrepo.ISanctionRepository,
	repaymentRepo repaymentrepo.IRepaymentRepository,
	accountRepo accountrepo.IAccountRepository,
	ledgerSvc ledgerservice.ILedgerService,
	notifier domain.NotificationSender,
	logger zerolog.Logger,
) ILoanService {
	return &loanService{
		db:            db,
		loanRepo:      loanRepo,
		sanctionRepo:  sanctionRepo,
		repaymentRepo: repaymentRepo,
		accountRepo:   accountRepo,
		ledgerSvc:     ledgerSvc,
		notifier:      notifier,
		logger:        logger,
	}
}

func (s *loanService) Submit(ctx context.Context, application *domain.LoanApplication) (*domain.LoanApplication, error) {
	if !domain.ValidLoanType(application.LoanType) {
		return nil, domain.NewValidationError("unknown loan type %q", application.LoanType)
	}
	if !domain.ValidEmploymentType(application.EmploymentType) {
		return nil, domain.NewValidationError("unknown employment type %q", application.EmploymentType)
	}
	if application.LoanAmount <= 0 {
		return nil, domain.NewValidationError("loan amount must be positive")
	}
	if application.TenureYears <= 0 {
		return nil, domain.NewValidationError("tenure must be at least one year")
	}
	if application.InterestRate < 0 {
		return nil, domain.NewValidationError("interest rate cannot be negative")
	}

	account, err := s.accountRepo.GetByNumber(ctx, application.AccountNumber)
	if err != nil {
		return nil, err
	}

	existing, err := s.loanRepo.ListByAccount(ctx, application.AccountNumber)
	if err != nil {
		return nil, err
	}
	if err := CheckEligibility(application, existing); err != nil {
		s.logger.Warn().
			Int64("account_number", application.AccountNumber).
			Str("loan_type", string(application.LoanType)).
			Str("reason", err.Error()).
			Msg("Loan application rejected by eligibility rules")
		return nil, err
	}

	now := time.Now()
	application.ID = uuid.New().String()
	application.Status = domain.LoanPending
	application.CreatedAt = now
	application.UpdatedAt = now

	if err := s.loanRepo.Create(ctx, application); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("loan_id", application.ID).
		Int64("account_number", application.AccountNumber).
		Str("loan_type", string(application.LoanType)).
		Msg("Loan application submitted")

	if err := s.notifier.SendLoanSubmitted(ctx, account, application); err != nil {
		s.logger.Error().Err(err).Str("loan_id", application.ID).Msg("Failed to send loan submission email")
	}

	return application, nil
}

func (s *loanService) GetByID(ctx context.Context, loanID string) (*domain.LoanApplication, error) {
	return s.loanRepo.GetByID(ctx, loanID)
}

func (s *loanService) ListAll(ctx context.Context) ([]domain.LoanApplication, error) {
	return s.loanRepo.ListAll(ctx)
}

func (s *loanService) ListByAccount(ctx context.Context, accountNumber int64) ([]domain.LoanApplication, error) {
	return s.loanRepo.ListByAccount(ctx, accountNumber)
}

func (s *loanService) ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.LoanApplication, error) {
	return s.loanRepo.ListByStatus(ctx, status)
}

func (s *loanService) ListByAccountAndType(ctx context.Context, accountNumber int64, loanType domain.LoanType) ([]domain.LoanApplication, error) {
	return s.loanRepo.ListByAccountAndType(ctx, accountNumber, loanType)
}

func (s *loanService) SanctionForLoan(ctx context.Context, loanID string) (*domain.LoanSanction, error) {
	return s.sanctionRepo.GetByLoanID(ctx, loanID)
}

func (s *loanService) Approve(ctx context.Context, loanID, sanctionedBy string) (*domain.LoanSanction, error) {
	application, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if application.Status != domain.LoanPending {
		return nil, domain.NewValidationError("loan %s is %s, only pending loans can be approved", loanID, application.Status)
	}

	account, err := s.accountRepo.GetByNumber(ctx, application.AccountNumber)
	if err != nil {
		return nil, err
	}

	result, err := amortization.Calculate(application.LoanAmount, application.InterestRate, application.TenureYears)
	if err != nil {
		s.logger.Error().Err(err).Str("loan_id", loanID).Msg("Amortization failed, loan cannot be sanctioned")
		return nil, err
	}
	installment := money.Round2(result.MonthlyPayment)

	sanctionDate := time.Now()
	startDate := sanctionDate.AddDate(0, 1, 0)
	totalMonths := application.TenureYears * 12
	endDate := startDate.AddDate(0, totalMonths, 0)

	sanction := &domain.LoanSanction{
		ID:                 uuid.New().String(),
		LoanID:             loanID,
		SanctionAmount:     application.LoanAmount,
		SanctionDate:       sanctionDate,
		LoanStartDate:      startDate,
		LoanEndDate:        endDate,
		InterestRate:       application.InterestRate,
		MonthlyInstallment: installment,
		Status:             domain.SanctionApproved,
		SanctionedBy:       sanctionedBy,
		CreatedAt:          sanctionDate,
	}

	schedule := buildSchedule(loanID, application.LoanAmount, installment, startDate, totalMonths)

	unlock := s.ledgerSvc.LockAccount(application.AccountNumber)
	defer unlock()

	err = s.db.WithinTx(ctx, func(tx *sql.Tx) error {
		if err := s.loanRepo.WithTx(tx).UpdateStatus(ctx, loanID, domain.LoanApproved); err != nil {
			return err
		}
		if err := s.sanctionRepo.WithTx(tx).Create(ctx, sanction); err != nil {
			return err
		}
		if err := s.repaymentRepo.WithTx(tx).CreateSchedule(ctx, schedule); err != nil {
			return err
		}
		_, err := s.ledgerSvc.CreditInTx(ctx, tx, application.AccountNumber, application.LoanAmount, domain.TransactionCredit, domain.BankAccount)
		return err
	})
	if err != nil {
		s.logger.Error().Err(err).Str("loan_id", loanID).Msg("Loan approval failed")
		return nil, err
	}

	s.logger.Info().
		Str("loan_id", loanID).
		Float64("sanction_amount", sanction.SanctionAmount).
		Float64("monthly_installment", installment).
		Int("installments", totalMonths).
		Msg("Loan approved and disbursed")

	application.Status = domain.LoanApproved
	if err := s.notifier.SendLoanDecision(ctx, account, application, true); err != nil {
		s.logger.Error().Err(err).Str("loan_id", loanID).Msg("Failed to send approval email")
	}

	return sanction, nil
}

func (s *loanService) Reject(ctx context.Context, loanID string) error {
	application, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return err
	}
	if application.Status != domain.LoanPending {
		return domain.NewValidationError("loan %s is %s, only pending loans can be rejected", loanID, application.Status)
	}

	if err := s.loanRepo.UpdateStatus(ctx, loanID, domain.LoanRejected); err != nil {
		return err
	}
	s.logger.Info().Str("loan_id", loanID).Msg("Loan rejected")

	account, err := s.accountRepo.GetByNumber(ctx, application.AccountNumber)
	if err != nil {
		s.logger.Error().Err(err).Str("loan_id", loanID).Msg("Failed to resolve account for rejection email")
		return nil
	}
	application.Status = domain.LoanRejected
	if err := s.notifier.SendLoanDecision(ctx, account, application, false); err != nil {
		s.logger.Error().Err(err).Str("loan_id", loanID).Msg("Failed to send rejection email")
	}
	return nil
}

// buildSchedule materializes one installment per month. The due amount is
// the running outstanding balance at the start of each period: it opens at
// the full principal and declines by one installment per period.
func buildSchedule(loanID string, principal, installment float64, startDate time.Time, totalMonths int) []domain.LoanRepayment {
	schedule := make([]domain.LoanRepayment, 0, totalMonths)
	remaining := principal
	paymentDate := startDate
	now := time.Now()

	for month := 0; month < totalMonths; month++ {
		schedule = append(schedule, domain.LoanRepayment{
			ID:            uuid.New().String(),
			LoanID:        loanID,
			PaymentDate:   paymentDate,
			PaymentAmount: installment,
			PaymentMode:   domain.PaymentModeScheduled,
			Status:        domain.RepaymentPending,
			DueLoanAmount: money.Round2(remaining),
			UpdatedAt:     now,
		})
		remaining -= installment
		paymentDate = paymentDate.AddDate(0, 1, 0)
	}
	return schedule
}
