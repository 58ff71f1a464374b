package user

import (
	"context"
	"fmt"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"golang.org/x/crypto/bcrypt"
)

// ChangePassword replaces the account's password after verifying the current
// one. A wrong current password is domain.ErrUnauthorized, same as a failed
// login.
func (s *userService) ChangePassword(ctx context.Context, principal domain.Principal, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	account, err := s.uow.UserRepo().FindByID(ctx, principal.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(oldPassword)); err != nil {
		return fmt.Errorf("%w: invalid old password", domain.ErrUnauthorized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: hashing password: %w", domain.ErrInternal, err)
	}
	account.PasswordHash = string(hash)

	return s.uow.UserRepo().Update(ctx, account)
}
