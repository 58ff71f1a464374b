package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NomanKhan13/focusTube/internal/config"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenStore keeps the currently valid refresh token per user in redis.
// Saving overwrites the previous token, which revokes it.
type TokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenStore connects to redis and verifies the connection
func NewTokenStore(ctx context.Context, cfg config.RedisConfig, ttl time.Duration) (*TokenStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &TokenStore{client: client, ttl: ttl}, nil
}

func key(userID uuid.UUID) string {
	return "refresh_token:" + userID.String()
}

// Save stores the refresh token with the configured TTL
func (s *TokenStore) Save(ctx context.Context, userID uuid.UUID, token string) error {
	if err := s.client.Set(ctx, key(userID), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// Find returns the stored refresh token, domain.ErrNotFound when absent
func (s *TokenStore) Find(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := s.client.Get(ctx, key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("%w: refresh token", domain.ErrNotFound)
		}
		return "", fmt.Errorf("failed to read refresh token: %w", err)
	}
	return token, nil
}

// Delete drops the stored refresh token; deleting an absent token is fine
func (s *TokenStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

// Close closes the underlying client
func (s *TokenStore) Close() error {
	return s.client.Close()
}

var _ port.RefreshTokenStore = (*TokenStore)(nil)
