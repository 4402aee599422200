package domain

import (
	"context"
	"time"
)

// NotificationSender delivers borrower-facing messages. Every method may
// fail; callers log the failure and continue, since notification is
// best-effort relative to the financial mutation it follows.
type NotificationSender interface {
	SendAccountCreated(ctx context.Context, account *Account) error
	SendLoanSubmitted(ctx context.Context, account *Account, application *LoanApplication) error
	SendLoanDecision(ctx context.Context, account *Account, application *LoanApplication, approved bool) error
	SendRepaymentConfirmed(ctx context.Context, account *Account, loanID string, amountPaid, remainingDue float64, paymentMode string) error
	SendPreclosureConfirmed(ctx context.Context, account *Account, loanID string, amount float64, paymentMode string) error
	SendDueReminder(ctx context.Context, account *Account, loanID string, dueAmount float64, dueDate time.Time) error
	SendOTP(ctx context.Context, email, name, otp string) error
}
