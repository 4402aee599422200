package otpservice

import (
	"context"
	"crypto/rand"
	"math/big"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/domain"
	"github.com/Nataraj2001/LMS/internal/repositories/accountrepo"
)

const otpTTL = 10 * time.Minute

type otpEntry struct {
	code      string
	expiresAt time.Time
}

type otpService struct {
	mu          sync.Mutex
	codes       map[string]otpEntry
	accountRepo accountrepo.IAccountRepository
	notifier    domain.NotificationSender
	sweepEvery  time.Duration
	logger      zerolog.Logger
}

func New(accountRepo accountrepo.IAccountRepository, notifier domain.NotificationSender, sweepEvery time.Duration, logger zerolog.Logger) IOTPService {
	return &otpService{
		codes:       make(map[string]otpEntry),
		accountRepo: accountRepo,
		notifier:    notifier,
		sweepEvery:  sweepEvery,
		logger:      logger,
	}
}

func (s *otpService) Generate(ctx context.Context, email string) error {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := randomCode()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.codes[email] = otpEntry{code: code, expiresAt: time.Now().Add(otpTTL)}
	s.mu.Unlock()

	if err := s.notifier.SendOTP(ctx, email, account.HolderName, code); err != nil {
		s.Clear(email)
		return err
	}
	s.logger.Info().Str("email", email).Msg("OTP issued")
	return nil
}

func (s *otpService) Validate(_ context.Context, email, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[email]
	if !ok {
		return false
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.codes, email)
		return false
	}
	if entry.code != code {
		return false
	}
	delete(s.codes, email)
	return true
}

func (s *otpService) Clear(email string) {
	s.mu.Lock()
	delete(s.codes, email)
	s.mu.Unlock()
}

func (s *otpService) StartExpirySweep(ctx context.Context) error {
	ticker := time.NewTicker(s.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.dropExpired()
		}
	}
}

func (s *otpService) dropExpired() {
	now := time.Now()
	s.mu.Lock()
	for email, entry := range s.codes {
		if now.After(entry.expiresAt) {
			delete(s.codes, email)
		}
	}
	s.mu.Unlock()
}

// randomCode returns a 6 digit code with leading zeros preserved.
func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := n.Int64()
	digits := make([]byte, 6)
	for i := 5; i >= 0; i-- {
		digits[i] = byte('0' + code%10)
		code /= 10
	}
	return string(digits), nil
}
