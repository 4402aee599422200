package authservice

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/Nataraj2001/LMS/internal/domain"
	"github.com/Nataraj2001/LMS/pkg/config"
)

func newTestService(secret string) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	return NewAuthService(cfg, zerolog.Nop())
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc := newTestService("test-secret")

	token, err := svc.IssueToken("admin@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("email = %q, want admin@example.com", claims.Email)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("role = %s, want ADMIN", claims.Role)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := newTestService("secret-a")
	verifier := newTestService("secret-b")

	token, err := issuer.IssueToken("user@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	if _, err := verifier.VerifyToken(token); err == nil {
		t.Error("token signed with a different secret verified")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newTestService("test-secret")

	if _, err := svc.VerifyToken("not-a-token"); err == nil {
		t.Error("malformed token verified")
	}
}

func TestIssueRequiresSecret(t *testing.T) {
	svc := newTestService("")

	if _, err := svc.IssueToken("user@example.com", domain.RoleUser); err == nil {
		t.Error("token issued without a configured secret")
	}
}
