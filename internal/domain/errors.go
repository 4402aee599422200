package domain

import (
	"errors"
	"fmt"
)

// Not-found and funds errors are detected before or during a single balance
// mutation; ValidationError aborts before anything is written.
// ProcessingError means money has already moved and the remaining steps did
// not complete, so callers must treat the loan as needing reconciliation.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrLoanNotFound      = errors.New("loan application not found")
	ErrSanctionNotFound  = errors.New("loan sanction not found")
	ErrRepaymentNotFound = errors.New("loan repayment not found")
	ErrInsufficientFunds = errors.New("insufficient balance")
)

// ValidationError carries a borrower-facing rejection reason. Nothing has
// been persisted when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ProcessingError wraps a failure that occurred after a financial mutation
// was committed.
type ProcessingError struct {
	Op  string
	Err error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s failed after funds moved: %v", e.Op, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
