package port

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/google/uuid"
)

// UserRepository is an interface to define user repository interactions
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// RegisterInput carries a validated registration request
type RegisterInput struct {
	Username string
	FullName string
	Email    string
	Password string
}

// LoginInput carries a login request; Login is a username or an email
type LoginInput struct {
	Login    string
	Password string
}

// UserService is an interface to define account operations
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, in LoginInput) (*domain.User, *domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	Logout(ctx context.Context, principal domain.Principal) error
	Get(ctx context.Context, principal domain.Principal) (*domain.User, error)
	ChangePassword(ctx context.Context, principal domain.Principal, oldPassword, newPassword string) error
	ChangeEmail(ctx context.Context, principal domain.Principal, newEmail string) (*domain.User, error)
}
