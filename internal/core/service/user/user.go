package user

import (
	"log/slog"

	"github.com/NomanKhan13/focusTube/internal/core/port"
)

type userService struct {
	uow    port.UnitOfWork
	auth   port.AuthProvider
	tokens port.RefreshTokenStore
	logger *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(uow port.UnitOfWork, auth port.AuthProvider, tokens port.RefreshTokenStore, logger *slog.Logger) port.UserService {
	return &userService{
		uow:    uow,
		auth:   auth,
		tokens: tokens,
		logger: logger,
	}
}
