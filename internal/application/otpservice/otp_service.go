package otpservice

import "context"

type IOTPService interface {
	// Generate creates and delivers a fresh code for the email, replacing
	// any code already outstanding.
	Generate(ctx context.Context, email string) error
	// Validate consumes the code on success. A wrong or expired code leaves
	// nothing consumed.
	Validate(ctx context.Context, email, code string) bool
	Clear(email string)
	// StartExpirySweep blocks, dropping expired codes on the configured
	// interval until ctx is cancelled.
	StartExpirySweep(ctx context.Context) error
}
