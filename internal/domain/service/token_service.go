package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are carried by access tokens. The subject is the user ID.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the bearer tokens of the REST API.
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken rejects expired tokens and tokens signed with another key
	// or algorithm.
	ValidateToken(tokenString string) (*Claims, error)
}
