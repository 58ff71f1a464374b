package user

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// Get returns the authenticated account's own profile
func (s *userService) Get(ctx context.Context, principal domain.Principal) (*domain.User, error) {
	return s.uow.UserRepo().FindByID(ctx, principal.UserID)
}
