package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the credentials against the stored bcrypt hash and issues a
// fresh token pair. Unknown accounts and wrong passwords both come back as
// domain.ErrUnauthorized so callers cannot probe for registered names.
func (s *userService) Login(ctx context.Context, in port.LoginInput) (*domain.User, *domain.TokenPair, error) {
	login := strings.ToLower(strings.TrimSpace(in.Login))
	if login == "" || in.Password == "" {
		return nil, nil, fmt.Errorf("%w: login and password required", domain.ErrValidation)
	}

	account, err := s.uow.UserRepo().FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	pair, err := s.issuePair(ctx, account)
	if err != nil {
		return nil, nil, err
	}
	return account, pair, nil
}

func (s *userService) issuePair(ctx context.Context, account *domain.User) (*domain.TokenPair, error) {
	principal := domain.Principal{UserID: account.ID, Username: account.Username}

	accessToken, err := s.auth.IssueAccessToken(principal)
	if err != nil {
		return nil, fmt.Errorf("%w: issuing access token: %w", domain.ErrInternal, err)
	}
	refreshToken, err := s.auth.IssueRefreshToken(principal)
	if err != nil {
		return nil, fmt.Errorf("%w: issuing refresh token: %w", domain.ErrInternal, err)
	}

	if err := s.tokens.Save(ctx, account.ID, refreshToken); err != nil {
		return nil, fmt.Errorf("%w: saving refresh token: %w", domain.ErrInternal, err)
	}

	return &domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
