package repaymentservice

import (
	"context"
	"database/sql"
	"time"

	"github.com/Nataraj2001/LMS/internal/domain"
	"github.com/Nataraj2001/LMS/internal/repositories/accountrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/ledgerrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/loanrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/repaymentrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/sanctionrepo"
)

type fakeTxRunner struct{}

func (fakeTxRunner) WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return fn(nil)
}

type mockAccountRepo struct {
	accounts map[int64]*domain.Account
}

func newMockAccountRepo(accounts ...*domain.Account) *mockAccountRepo {
	m := &mockAccountRepo{accounts: make(map[int64]*domain.Account)}
	for _, a := range accounts {
		m.accounts[a.AccountNumber] = a
	}
	return m
}

func (m *mockAccountRepo) WithTx(tx *sql.Tx) accountrepo.IAccountRepository { return m }

func (m *mockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	m.accounts[account.AccountNumber] = account
	return nil
}

func (m *mockAccountRepo) GetByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	account, ok := m.accounts[accountNumber]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (m *mockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	for _, account := range m.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *mockAccountRepo) UpdateBalance(ctx context.Context, accountNumber int64, balance float64) error {
	account, ok := m.accounts[accountNumber]
	if !ok {
		return domain.ErrAccountNotFound
	}
	account.Balance = balance
	return nil
}

func (m *mockAccountRepo) UpdateStatus(ctx context.Context, accountNumber int64, status domain.AccountStatus) error {
	account, ok := m.accounts[accountNumber]
	if !ok {
		return domain.ErrAccountNotFound
	}
	account.Status = status
	return nil
}

type mockLoanRepo struct {
	loans map[string]*domain.LoanApplication
}

func newMockLoanRepo(loans ...*domain.LoanApplication) *mockLoanRepo {
	m := &mockLoanRepo{loans: make(map[string]*domain.LoanApplication)}
	for _, l := range loans {
		m.loans[l.ID] = l
	}
	return m
}

func (m *mockLoanRepo) WithTx(tx *sql.Tx) loanrepo.ILoanRepository { return m }

func (m *mockLoanRepo) Create(ctx context.Context, application *domain.LoanApplication) error {
	copied := *application
	m.loans[application.ID] = &copied
	return nil
}

func (m *mockLoanRepo) GetByID(ctx context.Context, id string) (*domain.LoanApplication, error) {
	loan, ok := m.loans[id]
	if !ok {
		return nil, domain.ErrLoanNotFound
	}
	copied := *loan
	return &copied, nil
}

func (m *mockLoanRepo) ListAll(ctx context.Context) ([]domain.LoanApplication, error) {
	var out []domain.LoanApplication
	for _, loan := range m.loans {
		out = append(out, *loan)
	}
	return out, nil
}

func (m *mockLoanRepo) ListByAccount(ctx context.Context, accountNumber int64) ([]domain.LoanApplication, error) {
	var out []domain.LoanApplication
	for _, loan := range m.loans {
		if loan.AccountNumber == accountNumber {
			out = append(out, *loan)
		}
	}
	return out, nil
}

func (m *mockLoanRepo) ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.LoanApplication, error) {
	var out []domain.LoanApplication
	for _, loan := range m.loans {
		if loan.Status == status {
			out = append(out, *loan)
		}
	}
	return out, nil
}

func (m *mockLoanRepo) ListByAccountAndType(ctx context.Context, accountNumber int64, loanType domain.LoanType) ([]domain.LoanApplication, error) {
	var out []domain.LoanApplication
	for _, loan := range m.loans {
		if loan.AccountNumber == accountNumber && loan.LoanType == loanType {
			out = append(out, *loan)
		}
	}
	return out, nil
}

func (m *mockLoanRepo) UpdateStatus(ctx context.Context, id string, status domain.LoanStatus) error {
	loan, ok := m.loans[id]
	if !ok {
		return domain.ErrLoanNotFound
	}
	loan.Status = status
	loan.UpdatedAt = time.Now()
	return nil
}

type mockSanctionRepo struct {
	sanctions map[string]*domain.LoanSanction
}

func newMockSanctionRepo(sanctions ...*domain.LoanSanction) *mockSanctionRepo {
	m := &mockSanctionRepo{sanctions: make(map[string]*domain.LoanSanction)}
	for _, s := range sanctions {
		m.sanctions[s.ID] = s
	}
	return m
}

func (m *mockSanctionRepo) WithTx(tx *sql.Tx) sanctionrepo.ISanctionRepository { return m }

func (m *mockSanctionRepo) Create(ctx context.Context, sanction *domain.LoanSanction) error {
	copied := *sanction
	m.sanctions[sanction.ID] = &copied
	return nil
}

func (m *mockSanctionRepo) GetByLoanID(ctx context.Context, loanID string) (*domain.LoanSanction, error) {
	for _, sanction := range m.sanctions {
		if sanction.LoanID == loanID {
			copied := *sanction
			return &copied, nil
		}
	}
	return nil, domain.ErrSanctionNotFound
}

func (m *mockSanctionRepo) UpdateStatus(ctx context.Context, id string, status domain.SanctionStatus) error {
	sanction, ok := m.sanctions[id]
	if !ok {
		return domain.ErrSanctionNotFound
	}
	sanction.Status = status
	return nil
}

type mockRepaymentRepo struct {
	repayments map[string]*domain.LoanRepayment
	order      []string
}

func newMockRepaymentRepo(repayments ...*domain.LoanRepayment) *mockRepaymentRepo {
	m := &mockRepaymentRepo{repayments: make(map[string]*domain.LoanRepayment)}
	for _, r := range repayments {
		m.repayments[r.ID] = r
		m.order = append(m.order, r.ID)
	}
	return m
}

func (m *mockRepaymentRepo) WithTx(tx *sql.Tx) repaymentrepo.IRepaymentRepository { return m }

func (m *mockRepaymentRepo) CreateSchedule(ctx context.Context, schedule []domain.LoanRepayment) error {
	for i := range schedule {
		copied := schedule[i]
		m.repayments[copied.ID] = &copied
		m.order = append(m.order, copied.ID)
	}
	return nil
}

func (m *mockRepaymentRepo) GetByID(ctx context.Context, id string) (*domain.LoanRepayment, error) {
	repayment, ok := m.repayments[id]
	if !ok {
		return nil, domain.ErrRepaymentNotFound
	}
	copied := *repayment
	return &copied, nil
}

func (m *mockRepaymentRepo) ListByLoan(ctx context.Context, loanID string) ([]domain.LoanRepayment, error) {
	var out []domain.LoanRepayment
	for _, id := range m.order {
		if m.repayments[id].LoanID == loanID {
			out = append(out, *m.repayments[id])
		}
	}
	return out, nil
}

func (m *mockRepaymentRepo) ListByLoanAndStatus(ctx context.Context, loanID string, status domain.RepaymentStatus) ([]domain.LoanRepayment, error) {
	var out []domain.LoanRepayment
	for _, id := range m.order {
		r := m.repayments[id]
		if r.LoanID == loanID && r.Status == status {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRepaymentRepo) ListByLoanBetween(ctx context.Context, loanID string, start, end time.Time) ([]domain.LoanRepayment, error) {
	var out []domain.LoanRepayment
	for _, id := range m.order {
		r := m.repayments[id]
		if r.LoanID == loanID && !r.PaymentDate.Before(start) && !r.PaymentDate.After(end) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRepaymentRepo) ListOverduePending(ctx context.Context, before time.Time) ([]domain.LoanRepayment, error) {
	var out []domain.LoanRepayment
	for _, id := range m.order {
		r := m.repayments[id]
		if r.Status == domain.RepaymentPending && r.PaymentDate.Before(before) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRepaymentRepo) LastByLoan(ctx context.Context, loanID string) (*domain.LoanRepayment, error) {
	var last *domain.LoanRepayment
	for _, id := range m.order {
		r := m.repayments[id]
		if r.LoanID == loanID && (last == nil || r.PaymentDate.After(last.PaymentDate)) {
			last = r
		}
	}
	if last == nil {
		return nil, domain.ErrRepaymentNotFound
	}
	copied := *last
	return &copied, nil
}

func (m *mockRepaymentRepo) UpdateStatus(ctx context.Context, id string, status domain.RepaymentStatus, dueLoanAmount float64, paymentMode string) error {
	repayment, ok := m.repayments[id]
	if !ok {
		return domain.ErrRepaymentNotFound
	}
	repayment.Status = status
	repayment.DueLoanAmount = dueLoanAmount
	repayment.PaymentMode = paymentMode
	repayment.UpdatedAt = time.Now()
	return nil
}

type mockLedgerRepo struct {
	rows []domain.LedgerTransaction
}

func (m *mockLedgerRepo) WithTx(tx *sql.Tx) ledgerrepo.ILedgerRepository { return m }

func (m *mockLedgerRepo) Append(ctx context.Context, transaction *domain.LedgerTransaction) error {
	m.rows = append(m.rows, *transaction)
	return nil
}

func (m *mockLedgerRepo) GetByID(ctx context.Context, id string) (*domain.LedgerTransaction, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			return &m.rows[i], nil
		}
	}
	return nil, domain.ErrRepaymentNotFound
}

func (m *mockLedgerRepo) ListByAccount(ctx context.Context, accountNumber int64) ([]domain.LedgerTransaction, error) {
	var out []domain.LedgerTransaction
	for _, row := range m.rows {
		if row.AccountNumber == accountNumber {
			out = append(out, row)
		}
	}
	return out, nil
}

// recordingNotifier counts sends so sweep tests can assert delivery without
// a real SMTP server.
type recordingNotifier struct {
	reminders   []string
	repayments  []string
	preclosures []string
}

func (n *recordingNotifier) SendAccountCreated(ctx context.Context, account *domain.Account) error {
	return nil
}

func (n *recordingNotifier) SendLoanSubmitted(ctx context.Context, account *domain.Account, application *domain.LoanApplication) error {
	return nil
}

func (n *recordingNotifier) SendLoanDecision(ctx context.Context, account *domain.Account, application *domain.LoanApplication, approved bool) error {
	return nil
}

func (n *recordingNotifier) SendRepaymentConfirmed(ctx context.Context, account *domain.Account, loanID string, amountPaid, remainingDue float64, paymentMode string) error {
	n.repayments = append(n.repayments, loanID)
	return nil
}

func (n *recordingNotifier) SendPreclosureConfirmed(ctx context.Context, account *domain.Account, loanID string, amount float64, paymentMode string) error {
	n.preclosures = append(n.preclosures, loanID)
	return nil
}

func (n *recordingNotifier) SendDueReminder(ctx context.Context, account *domain.Account, loanID string, dueAmount float64, dueDate time.Time) error {
	n.reminders = append(n.reminders, loanID)
	return nil
}

func (n *recordingNotifier) SendOTP(ctx context.Context, email, name, otp string) error {
	return nil
}
