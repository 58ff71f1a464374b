package auth

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAuthProvider struct {
	mock.Mock
}

func NewMockAuthProvider() *MockAuthProvider {
	return &MockAuthProvider{}
}

func (m *MockAuthProvider) IssueAccessToken(principal domain.Principal) (string, error) {
	args := m.Called(principal)
	return args.String(0), args.Error(1)
}

func (m *MockAuthProvider) IssueRefreshToken(principal domain.Principal) (string, error) {
	args := m.Called(principal)
	return args.String(0), args.Error(1)
}

func (m *MockAuthProvider) Verify(token string) (domain.Principal, error) {
	args := m.Called(token)
	return args.Get(0).(domain.Principal), args.Error(1)
}

func (m *MockAuthProvider) VerifyRefresh(token string) (domain.Principal, error) {
	args := m.Called(token)
	return args.Get(0).(domain.Principal), args.Error(1)
}

type MockRefreshTokenStore struct {
	mock.Mock
}

func NewMockRefreshTokenStore() *MockRefreshTokenStore {
	return &MockRefreshTokenStore{}
}

func (m *MockRefreshTokenStore) Save(ctx context.Context, userID uuid.UUID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockRefreshTokenStore) Find(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockRefreshTokenStore) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
