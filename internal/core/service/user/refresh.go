package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// Refresh rotates a token pair. The presented refresh token must verify and
// match the server-side copy; anything else is domain.ErrUnauthorized.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("%w: refresh token required", domain.ErrUnauthorized)
	}

	principal, err := s.auth.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", domain.ErrUnauthorized)
	}

	stored, err := s.tokens.Find(ctx, principal.UserID)
	if err != nil || stored != refreshToken {
		return nil, fmt.Errorf("%w: refresh token revoked", domain.ErrUnauthorized)
	}

	account, err := s.uow.UserRepo().FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: account no longer exists", domain.ErrUnauthorized)
		}
		return nil, err
	}

	return s.issuePair(ctx, account)
}

// Logout drops the stored refresh token; the access token simply expires.
func (s *userService) Logout(ctx context.Context, principal domain.Principal) error {
	if err := s.tokens.Delete(ctx, principal.UserID); err != nil {
		return fmt.Errorf("%w: deleting refresh token: %w", domain.ErrInternal, err)
	}
	return nil
}
