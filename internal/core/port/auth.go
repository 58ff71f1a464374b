package port

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/google/uuid"
)

// AuthProvider is an interface to define token issuance and verification
type AuthProvider interface {
	IssueAccessToken(principal domain.Principal) (string, error)
	IssueRefreshToken(principal domain.Principal) (string, error)
	Verify(token string) (domain.Principal, error)
	VerifyRefresh(token string) (domain.Principal, error)
}

// RefreshTokenStore is an interface to define server-side refresh token state.
// Only the most recently issued refresh token per user is valid.
type RefreshTokenStore interface {
	Save(ctx context.Context, userID uuid.UUID, token string) error
	Find(ctx context.Context, userID uuid.UUID) (string, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}
