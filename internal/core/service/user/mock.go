package user

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/stretchr/testify/mock"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

// NewMockUserService creates a new MockUserService
func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

func (m *MockUserService) Register(ctx context.Context, in port.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, in port.LoginInput) (*domain.User, *domain.TokenPair, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(*domain.User), args.Get(1).(*domain.TokenPair), args.Error(2)
}

func (m *MockUserService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, principal domain.Principal) error {
	args := m.Called(ctx, principal)
	return args.Error(0)
}

func (m *MockUserService) Get(ctx context.Context, principal domain.Principal) (*domain.User, error) {
	args := m.Called(ctx, principal)
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, principal domain.Principal, oldPassword, newPassword string) error {
	args := m.Called(ctx, principal, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockUserService) ChangeEmail(ctx context.Context, principal domain.Principal, newEmail string) (*domain.User, error) {
	args := m.Called(ctx, principal, newEmail)
	return args.Get(0).(*domain.User), args.Error(1)
}
