// Package amortization computes fixed-installment loan schedules using the
// standard compound-interest annuity formula.
package amortization

import (
	"errors"
	"math"
)

var (
	ErrInvalidInput = errors.New("principal and term must be positive and rate non-negative")
	ErrNotFinite    = errors.New("amortization result is not finite")
)

// Result holds the unrounded outputs of a loan calculation. Rounding to
// 2 decimal places is the caller's responsibility.
type Result struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
}

// Calculate returns the fixed monthly installment, total payment and total
// interest for a loan of the given principal, annual rate (percent) and term
// in years. A zero rate degenerates to a flat principal/term split.
func Calculate(principal, annualRate float64, termYears int) (Result, error) {
	if principal <= 0 || termYears <= 0 || annualRate < 0 {
		return Result{}, ErrInvalidInput
	}

	payments := termYears * 12
	monthlyRate := annualRate / 100 / 12

	var monthlyPayment float64
	if monthlyRate == 0 {
		monthlyPayment = principal / float64(payments)
	} else {
		x := math.Pow(1+monthlyRate, float64(payments))
		monthlyPayment = principal * x * monthlyRate / (x - 1)
	}

	if !isFinite(monthlyPayment) {
		return Result{}, ErrNotFinite
	}

	totalPayment := monthlyPayment * float64(payments)
	return Result{
		MonthlyPayment: monthlyPayment,
		TotalPayment:   totalPayment,
		TotalInterest:  totalPayment - principal,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
