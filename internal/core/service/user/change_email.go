package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// ChangeEmail updates the account's email. Stored lowercase like at
// registration; a duplicate returns domain.ErrConflict.
func (s *userService) ChangeEmail(ctx context.Context, principal domain.Principal, newEmail string) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(newEmail))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	account, err := s.uow.UserRepo().FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	account.Email = email

	if updateErr := s.uow.UserRepo().Update(ctx, account); updateErr != nil {
		return nil, updateErr
	}
	return account, nil
}
