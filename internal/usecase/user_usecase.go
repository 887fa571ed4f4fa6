// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"matchdeportivo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new player.
type RegisterInput struct {
	Username string
	Email    string
	Name     string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the interface for account operations.
type UserUsecase interface {
	// Register creates the account and its empty profile in one transaction.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	// ListUsers pages through every account with its profile, for administrators.
	ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, error)
}
