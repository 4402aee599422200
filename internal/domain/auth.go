package domain

import "github.com/dgrijalva/jwt-go"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type Claim struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	jwt.StandardClaims
}
