package repaymentservice

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/application/ledgerservice"
	"github.com/Nataraj2001/LMS/internal/domain"
	"github.com/Nataraj2001/LMS/internal/infrastructure/database"
	"github.com/Nataraj2001/LMS/internal/repositories/accountrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/loanrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/repaymentrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/sanctionrepo"
	"github.com/Nataraj2001/LMS/pkg/money"
)

type repaymentService struct {
	db            database.TxRunner
	repaymentRepo repaymentrepo.IRepaymentRepository
	loanRepo      loanrepo.ILoanRepository
	sanctionRepo  sanctionrepo.ISanctionRepository
	accountRepo   accountrepo.IAccountRepository
	ledgerSvc     ledgerservice.ILedgerService
	notifier      domain.NotificationSender
	logger        zerolog.Logger
	reminderEvery time.Duration
}

func New(
	db database.TxRunner,
	repaymentRepo repaymentrepo.IRepaymentRepository,
	loanRepo loanrepo.ILoanRepository,
	sanctionRepo sanctionrepo.ISanctionRepository,
	accountRepo accountrepo.IAccountRepository,
	ledgerSvc ledgerservice.ILedgerService,
	notifier domain.NotificationSender,
	reminderEvery time.Duration,
	logger zerolog.Logger,
) IRepaymentService {
	return &repaymentService{
		db:            db,
		repaymentRepo: repaymentRepo,
		loanRepo:      loanRepo,
		sanctionRepo:  sanctionRepo,
		accountRepo:   accountRepo,
		ledgerSvc:     ledgerSvc,
		notifier:      notifier,
		reminderEvery: reminderEvery,
		logger:        logger,
	}
}

func (s *repaymentService) GetByID(ctx context.Context, paymentID string) (*domain.LoanRepayment, error) {
	return s.repaymentRepo.GetByID(ctx, paymentID)
}

func (s *repaymentService) ListByLoan(ctx context.Context, loanID string) ([]domain.LoanRepayment, error) {
	return s.repaymentRepo.ListByLoan(ctx, loanID)
}

func (s *repaymentService) ListByLoanAndStatus(ctx context.Context, loanID string, status domain.RepaymentStatus) ([]domain.LoanRepayment, error) {
	return s.repaymentRepo.ListByLoanAndStatus(ctx, loanID, status)
}

func (s *repaymentService) LastByLoan(ctx context.Context, loanID string) (*domain.LoanRepayment, error) {
	return s.repaymentRepo.LastByLoan(ctx, loanID)
}

func (s *repaymentService) ProcessRepayment(ctx context.Context, paymentID, paymentMode string) (*domain.LoanRepayment, error) {
	repayment, err := s.repaymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	// Idempotency guard: an installment is mutated exactly once.
	if repayment.Status != domain.RepaymentPending {
		return nil, domain.NewValidationError("installment %s has already been processed (%s)", paymentID, repayment.Status)
	}

	application, err := s.loanRepo.GetByID(ctx, repayment.LoanID)
	if err != nil {
		s.markFailed(ctx, repayment)
		return nil, err
	}

	remainingDue := money.Round2(maxZero(repayment.DueLoanAmount - repayment.PaymentAmount))

	unlock := s.ledgerSvc.LockAccount(application.AccountNumber)
	err = func() error {
		defer unlock()
		return s.db.WithinTx(ctx, func(tx *sql.Tx) error {
			if _, err := s.ledgerSvc.DebitInTx(ctx, tx, application.AccountNumber, repayment.PaymentAmount, domain.TransactionRepayment, domain.BankAccount); err != nil {
				return err
			}
			if err := s.repaymentRepo.WithTx(tx).UpdateStatus(ctx, paymentID, domain.RepaymentCompleted, remainingDue, paymentMode); err != nil {
				return err
			}
			return s.closeSanctionIfSettled(ctx, tx, repayment.LoanID)
		})
	}()
	if err != nil {
		s.logger.Error().Err(err).Str("payment_id", paymentID).Msg("Repayment failed")
		s.markFailed(ctx, repayment)
		return nil, err
	}

	repayment.Status = domain.RepaymentCompleted
	repayment.DueLoanAmount = remainingDue
	repayment.PaymentMode = paymentMode

	s.logger.Info().
		Str("payment_id", paymentID).
		Str("loan_id", repayment.LoanID).
		Float64("amount", repayment.PaymentAmount).
		Float64("remaining_due", remainingDue).
		Msg("Repayment processed")

	if account, err := s.accountRepo.GetByNumber(ctx, application.AccountNumber); err == nil {
		if err := s.notifier.SendRepaymentConfirmed(ctx, account, repayment.LoanID, repayment.PaymentAmount, remainingDue, paymentMode); err != nil {
			s.logger.Error().Err(err).Str("payment_id", paymentID).Msg("Failed to send repayment email")
		}
	}

	return repayment, nil
}

// closeSanctionIfSettled closes the sanction and the application once no
// installment inside the sanction window is still pending.
func (s *repaymentService) closeSanctionIfSettled(ctx context.Context, tx *sql.Tx, loanID string) error {
	sanction, err := s.sanctionRepo.WithTx(tx).GetByLoanID(ctx, loanID)
	if err != nil {
		return err
	}

	schedule, err := s.repaymentRepo.WithTx(tx).ListByLoanBetween(ctx, loanID, sanction.LoanStartDate, sanction.LoanEndDate)
	if err != nil {
		return err
	}
	for _, installment := range schedule {
		if installment.Status == domain.RepaymentPending {
			return nil
		}
	}

	if err := s.sanctionRepo.WithTx(tx).UpdateStatus(ctx, sanction.ID, domain.SanctionClosed); err != nil {
		return err
	}
	if err := s.loanRepo.WithTx(tx).UpdateStatus(ctx, loanID, domain.LoanClosed); err != nil {
		return err
	}
	s.logger.Info().Str("loan_id", loanID).Msg("All installments settled, loan closed")
	return nil
}

func (s *repaymentService) markFailed(ctx context.Context, repayment *domain.LoanRepayment) {
	// The due amount stays untouched on failure.
	if err := s.repaymentRepo.UpdateStatus(ctx, repayment.ID, domain.RepaymentFailed, repayment.DueLoanAmount, repayment.PaymentMode); err != nil {
		s.logger.Error().Err(err).Str("payment_id", repayment.ID).Msg("Failed to mark repayment as failed")
	}
}

func (s *repaymentService) Preclose(ctx context.Context, loanID string, accountNumber int64, amount float64, paymentMode string) error {
	application, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return err
	}
	if application.Status != domain.LoanApproved {
		return domain.NewValidationError("loan %s is %s and cannot be preclosed", loanID, application.Status)
	}
	if amount <= 0 {
		return domain.NewValidationError("preclosure amount must be positive")
	}

	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return err
	}
	if account.Balance < amount {
		return domain.ErrInsufficientFunds
	}

	unlock := s.ledgerSvc.LockAccount(accountNumber)
	err = func() error {
		defer unlock()
		return s.db.WithinTx(ctx, func(tx *sql.Tx) error {
			if _, err := s.ledgerSvc.DebitInTx(ctx, tx, accountNumber, amount, domain.TransactionPreclosure, domain.BankAccount); err != nil {
				return err
			}

			// From here on money has moved inside this unit of work; any
			// failure is a processing error, not a validation error.
			repayments := s.repaymentRepo.WithTx(tx)
			pending, err := repayments.ListByLoanAndStatus(ctx, loanID, domain.RepaymentPending)
			if err != nil {
				return &domain.ProcessingError{Op: "preclosure", Err: err}
			}
			for _, installment := range pending {
				if err := repayments.UpdateStatus(ctx, installment.ID, domain.RepaymentCompleted, 0, paymentMode); err != nil {
					return &domain.ProcessingError{Op: "preclosure", Err: err}
				}
			}

			if err := s.loanRepo.WithTx(tx).UpdateStatus(ctx, loanID, domain.LoanClosed); err != nil {
				return &domain.ProcessingError{Op: "preclosure", Err: err}
			}

			sanction, err := s.sanctionRepo.WithTx(tx).GetByLoanID(ctx, loanID)
			if err != nil {
				return &domain.ProcessingError{Op: "preclosure", Err: err}
			}
			if err := s.sanctionRepo.WithTx(tx).UpdateStatus(ctx, sanction.ID, domain.SanctionClosed); err != nil {
				return &domain.ProcessingError{Op: "preclosure", Err: err}
			}
			return nil
		})
	}()
	if err != nil {
		s.logger.Error().Err(err).Str("loan_id", loanID).Msg("Preclosure failed")
		return err
	}

	s.logger.Info().
		Str("loan_id", loanID).
		Int64("account_number", accountNumber).
		Float64("amount", amount).
		Msg("Loan preclosed")

	if err := s.notifier.SendPreclosureConfirmed(ctx, account, loanID, amount, paymentMode); err != nil {
		s.logger.Error().Err(err).Str("loan_id", loanID).Msg("Failed to send preclosure email")
	}
	return nil
}

func (s *repaymentService) RunDueReminderSweep(ctx context.Context) error {
	overdue, err := s.repaymentRepo.ListOverduePending(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, installment := range overdue {
		application, err := s.loanRepo.GetByID(ctx, installment.LoanID)
		if err != nil {
			s.logger.Warn().Err(err).Str("loan_id", installment.LoanID).Msg("Loan not found for overdue installment")
			continue
		}
		account, err := s.accountRepo.GetByNumber(ctx, application.AccountNumber)
		if err != nil {
			s.logger.Warn().Err(err).Int64("account_number", application.AccountNumber).Msg("Account not found for due reminder")
			continue
		}
		if err := s.notifier.SendDueReminder(ctx, account, installment.LoanID, installment.DueLoanAmount, installment.PaymentDate); err != nil {
			s.logger.Error().Err(err).Str("payment_id", installment.ID).Msg("Failed to send due reminder")
			continue
		}
		s.logger.Info().Str("payment_id", installment.ID).Int64("account_number", account.AccountNumber).Msg("Due reminder sent")
	}
	return nil
}

func (s *repaymentService) StartDueReminderSweep(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.reminderEvery).Msg("Starting due reminder sweep")

	ticker := time.NewTicker(s.reminderEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Due reminder sweep stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := s.RunDueReminderSweep(ctx); err != nil {
				s.logger.Error().Err(err).Msg("Due reminder sweep failed")
			}
		}
	}
}

func maxZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
