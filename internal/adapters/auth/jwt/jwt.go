package jwt

import (
	"fmt"
	"time"

	"github.com/NomanKhan13/focusTube/internal/config"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Provider issues and verifies HS256 tokens. Access and refresh tokens are
// signed with separate secrets so one can never stand in for the other.
type Provider struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewProvider creates a Provider from auth config
func NewProvider(cfg config.AuthConfig) *Provider {
	return &Provider{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
	}
}

type claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// IssueAccessToken issues a short-lived access token for the principal
func (p *Provider) IssueAccessToken(principal domain.Principal) (string, error) {
	return p.issue(principal, p.accessSecret, p.accessTTL)
}

// IssueRefreshToken issues a long-lived refresh token for the principal
func (p *Provider) IssueRefreshToken(principal domain.Principal) (string, error) {
	return p.issue(principal, p.refreshSecret, p.refreshTTL)
}

func (p *Provider) issue(principal domain.Principal, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: principal.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.New().String(),
		},
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses an access token and returns the principal it carries
func (p *Provider) Verify(token string) (domain.Principal, error) {
	return p.verify(token, p.accessSecret)
}

// VerifyRefresh parses a refresh token and returns the principal it carries
func (p *Provider) VerifyRefresh(token string) (domain.Principal, error) {
	return p.verify(token, p.refreshSecret)
}

func (p *Provider) verify(token string, secret []byte) (domain.Principal, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	userID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: malformed subject claim", domain.ErrUnauthorized)
	}

	return domain.Principal{UserID: userID, Username: parsed.Username}, nil
}

var _ port.AuthProvider = (*Provider)(nil)
