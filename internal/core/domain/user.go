package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. PasswordHash is a bcrypt hash and
// must never leave the persistence and login paths.
type User struct {
	ID           uuid.UUID
	Username     string
	FullName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated identity attached to a request
type Principal struct {
	UserID   uuid.UUID
	Username string
}

// TokenPair carries a freshly issued access/refresh token pair
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
