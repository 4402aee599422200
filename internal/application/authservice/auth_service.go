package authservice

import "github.com/Nataraj2001/LMS/internal/domain"

type IAuthService interface {
	IssueToken(email string, role domain.Role) (string, error)
	VerifyToken(token string) (*domain.Claim, error)
}
