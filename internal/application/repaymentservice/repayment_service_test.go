package repaymentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/application/ledgerservice"
	"github.com/Nataraj2001/LMS/internal/domain"
)

type testEnv struct {
	svc        IRepaymentService
	accounts   *mockAccountRepo
	loans      *mockLoanRepo
	sanctions  *mockSanctionRepo
	repayments *mockRepaymentRepo
	ledger     *mockLedgerRepo
	notifier   *recordingNotifier
}

// newTestEnv builds an approved loan of three monthly installments of 1000
// against account 1001.
func newTestEnv(balance float64) *testEnv {
	start := time.Now().AddDate(0, -1, 1)

	accountRepo := newMockAccountRepo(&domain.Account{
		AccountNumber: 1001,
		Email:         "holder@example.com",
		Balance:       balance,
	})
	loanRepo := newMockLoanRepo(&domain.LoanApplication{
		ID:            "loan-1",
		AccountNumber: 1001,
		LoanAmount:    3000,
		LoanType:      domain.LoanPersonal,
		Status:        domain.LoanApproved,
	})
	sanctionRepo := newMockSanctionRepo(&domain.LoanSanction{
		ID:            "sanction-1",
		LoanID:        "loan-1",
		LoanStartDate: start,
		LoanEndDate:   start.AddDate(0, 3, 0),
		Status:        domain.SanctionApproved,
	})
	repaymentRepo := newMockRepaymentRepo(
		&domain.LoanRepayment{
			ID: "pay-1", LoanID: "loan-1", PaymentDate: start,
			PaymentAmount: 1000, PaymentMode: domain.PaymentModeScheduled,
			Status: domain.RepaymentPending, DueLoanAmount: 3000,
		},
		&domain.LoanRepayment{
			ID: "pay-2", LoanID: "loan-1", PaymentDate: start.AddDate(0, 1, 0),
			PaymentAmount: 1000, PaymentMode: domain.PaymentModeScheduled,
			Status: domain.RepaymentPending, DueLoanAmount: 2000,
		},
		&domain.LoanRepayment{
			ID: "pay-3", LoanID: "loan-1", PaymentDate: start.AddDate(0, 2, 0),
			PaymentAmount: 1000, PaymentMode: domain.PaymentModeScheduled,
			Status: domain.RepaymentPending, DueLoanAmount: 1000,
		},
	)
	ledgerRepo := &mockLedgerRepo{}
	notifier := &recordingNotifier{}

	ledgerSvc := ledgerservice.New(fakeTxRunner{}, accountRepo, ledgerRepo, zerolog.Nop())
	svc := New(fakeTxRunner{}, repaymentRepo, loanRepo, sanctionRepo, accountRepo, ledgerSvc, notifier, time.Hour, zerolog.Nop())

	return &testEnv{
		svc:        svc,
		accounts:   accountRepo,
		loans:      loanRepo,
		sanctions:  sanctionRepo,
		repayments: repaymentRepo,
		ledger:     ledgerRepo,
		notifier:   notifier,
	}
}

func TestProcessRepaymentCompletesInstallment(t *testing.T) {
	env := newTestEnv(5000)

	repayment, err := env.svc.ProcessRepayment(context.Background(), "pay-1", "UPI")
	if err != nil {
		t.Fatalf("ProcessRepayment returned error: %v", err)
	}
	if repayment.Status != domain.RepaymentCompleted {
		t.Errorf("status = %s, want COMPLETED", repayment.Status)
	}
	if repayment.DueLoanAmount != 2000 {
		t.Errorf("remaining due = %v, want 2000", repayment.DueLoanAmount)
	}
	if repayment.PaymentMode != "UPI" {
		t.Errorf("payment mode = %q, want UPI", repayment.PaymentMode)
	}

	account, _ := env.accounts.GetByNumber(context.Background(), 1001)
	if account.Balance != 4000 {
		t.Errorf("balance = %v, want 4000", account.Balance)
	}

	if len(env.ledger.rows) != 1 {
		t.Fatalf("ledger rows = %d, want 1", len(env.ledger.rows))
	}
	if env.ledger.rows[0].Type != domain.TransactionRepayment {
		t.Errorf("ledger type = %s, want LOAN_REPAYMENT", env.ledger.rows[0].Type)
	}

	// Two installments still pending, so nothing closes yet.
	loan, _ := env.loans.GetByID(context.Background(), "loan-1")
	if loan.Status != domain.LoanApproved {
		t.Errorf("loan status = %s, want still APPROVED", loan.Status)
	}

	if len(env.notifier.repayments) != 1 {
		t.Errorf("repayment confirmations = %d, want 1", len(env.notifier.repayments))
	}
}

func TestProcessRepaymentTwiceRejected(t *testing.T) {
	env := newTestEnv(5000)

	if _, err := env.svc.ProcessRepayment(context.Background(), "pay-1", "UPI"); err != nil {
		t.Fatalf("first ProcessRepayment returned error: %v", err)
	}

	_, err := env.svc.ProcessRepayment(context.Background(), "pay-1", "UPI")
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("second ProcessRepayment err = %v, want ValidationError", err)
	}

	account, _ := env.accounts.GetByNumber(context.Background(), 1001)
	if account.Balance != 4000 {
		t.Errorf("balance = %v, want 4000 after a single debit", account.Balance)
	}
	if len(env.ledger.rows) != 1 {
		t.Errorf("ledger rows = %d, want 1", len(env.ledger.rows))
	}
}

func TestProcessRepaymentInsufficientFundsMarksFailed(t *testing.T) {
	env := newTestEnv(200)

	_, err := env.svc.ProcessRepayment(context.Background(), "pay-1", "UPI")
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}

	repayment, _ := env.repayments.GetByID(context.Background(), "pay-1")
	if repayment.Status != domain.RepaymentFailed {
		t.Errorf("status = %s, want FAILED", repayment.Status)
	}
	if repayment.DueLoanAmount != 3000 {
		t.Errorf("due amount = %v, want untouched 3000", repayment.DueLoanAmount)
	}

	account, _ := env.accounts.GetByNumber(context.Background(), 1001)
	if account.Balance != 200 {
		t.Errorf("balance = %v, want untouched 200", account.Balance)
	}

	// The refused debit still leaves its FAILED audit row.
	if len(env.ledger.rows) != 1 || env.ledger.rows[0].Status != domain.TransactionFailed {
		t.Errorf("ledger rows = %+v, want one FAILED row", env.ledger.rows)
	}
}

func TestFinalRepaymentClosesLoanAndSanction(t *testing.T) {
	env := newTestEnv(5000)

	for _, id := range []string{"pay-1", "pay-2", "pay-3"} {
		if _, err := env.svc.ProcessRepayment(context.Background(), id, "UPI"); err != nil {
			t.Fatalf("ProcessRepayment(%s) returned error: %v", id, err)
		}
	}

	loan, _ := env.loans.GetByID(context.Background(), "loan-1")
	if loan.Status != domain.LoanClosed {
		t.Errorf("loan status = %s, want CLOSED", loan.Status)
	}
	sanction, _ := env.sanctions.GetByLoanID(context.Background(), "loan-1")
	if sanction.Status != domain.SanctionClosed {
		t.Errorf("sanction status = %s, want CLOSED", sanction.Status)
	}
}

func TestPreclosureSettlesEverything(t *testing.T) {
	env := newTestEnv(5000)

	if err := env.svc.Preclose(context.Background(), "loan-1", 1001, 2800, "NEFT"); err != nil {
		t.Fatalf("Preclose returned error: %v", err)
	}

	schedule, _ := env.repayments.ListByLoan(context.Background(), "loan-1")
	for _, installment := range schedule {
		if installment.Status != domain.RepaymentCompleted {
			t.Errorf("installment %s = %s, want COMPLETED", installment.ID, installment.Status)
		}
		if installment.DueLoanAmount != 0 {
			t.Errorf("installment %s due = %v, want 0", installment.ID, installment.DueLoanAmount)
		}
		if installment.PaymentMode != "NEFT" {
			t.Errorf("installment %s mode = %q, want NEFT", installment.ID, installment.PaymentMode)
		}
	}

	loan, _ := env.loans.GetByID(context.Background(), "loan-1")
	if loan.Status != domain.LoanClosed {
		t.Errorf("loan status = %s, want CLOSED", loan.Status)
	}
	sanction, _ := env.sanctions.GetByLoanID(context.Background(), "loan-1")
	if sanction.Status != domain.SanctionClosed {
		t.Errorf("sanction status = %s, want CLOSED", sanction.Status)
	}

	account, _ := env.accounts.GetByNumber(context.Background(), 1001)
	if account.Balance != 2200 {
		t.Errorf("balance = %v, want 2200", account.Balance)
	}

	if len(env.ledger.rows) != 1 {
		t.Fatalf("ledger rows = %d, want a single preclosure debit", len(env.ledger.rows))
	}
	if env.ledger.rows[0].Type != domain.TransactionPreclosure {
		t.Errorf("ledger type = %s, want LOAN_PRECLOSURE", env.ledger.rows[0].Type)
	}

	if len(env.notifier.preclosures) != 1 {
		t.Errorf("preclosure confirmations = %d, want 1", len(env.notifier.preclosures))
	}
}

func TestPreclosureOfClosedLoanRejected(t *testing.T) {
	env := newTestEnv(5000)

	if err := env.svc.Preclose(context.Background(), "loan-1", 1001, 2800, "NEFT"); err != nil {
		t.Fatalf("first Preclose returned error: %v", err)
	}

	err := env.svc.Preclose(context.Background(), "loan-1", 1001, 2800, "NEFT")
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("second Preclose err = %v, want ValidationError", err)
	}

	account, _ := env.accounts.GetByNumber(context.Background(), 1001)
	if account.Balance != 2200 {
		t.Errorf("balance = %v, want unchanged 2200 after rejected re-preclosure", account.Balance)
	}
}

func TestPreclosureInsufficientFundsFailsBeforeDebit(t *testing.T) {
	env := newTestEnv(1000)

	err := env.svc.Preclose(context.Background(), "loan-1", 1001, 2800, "NEFT")
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}

	// The balance pre-check fires before any money moves, so no ledger row.
	if len(env.ledger.rows) != 0 {
		t.Errorf("ledger rows = %d, want none", len(env.ledger.rows))
	}

	repayment, _ := env.repayments.GetByID(context.Background(), "pay-1")
	if repayment.Status != domain.RepaymentPending {
		t.Errorf("installment status = %s, want still PENDING", repayment.Status)
	}
}

func TestDueReminderSweep(t *testing.T) {
	env := newTestEnv(5000)

	if err := env.svc.RunDueReminderSweep(context.Background()); err != nil {
		t.Fatalf("RunDueReminderSweep returned error: %v", err)
	}

	// pay-1 is overdue; pay-2 and pay-3 fall due in the future.
	if len(env.notifier.reminders) != 1 {
		t.Fatalf("reminders sent = %d, want 1", len(env.notifier.reminders))
	}
	if env.notifier.reminders[0] != "loan-1" {
		t.Errorf("reminder loan = %q, want loan-1", env.notifier.reminders[0])
	}
}
