package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// Register creates a new account. Username and email are stored lowercase;
// a duplicate on either returns domain.ErrConflict.
func (s *userService) Register(ctx context.Context, in port.RegisterInput) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	fullName := strings.TrimSpace(in.FullName)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if username == "" || fullName == "" || email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if len(in.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %w", domain.ErrInternal, err)
	}

	account := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
	}

	if createErr := s.uow.UserRepo().Create(ctx, account); createErr != nil {
		return nil, createErr
	}

	return account, nil
}
