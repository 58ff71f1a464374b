package authn_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NomanKhan13/focusTube/internal/adapters/auth"
	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
	"github.com/NomanKhan13/focusTube/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func principalEcho(t *testing.T) (http.Handler, *domain.Principal, *bool) {
	t.Helper()

	var seen domain.Principal
	var called bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if principal, ok := authn.FromContext(r.Context()); ok {
			seen = principal
		}
		w.WriteHeader(http.StatusOK)
	})
	return handler, &seen, &called
}

func TestRequired(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success - bearer header", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		mockProvider := auth.NewMockAuthProvider()
		mockProvider.On("Verify", "good-token").Return(principal, nil)

		next, seen, _ := principalEcho(t)
		h := authn.Required(mockProvider, discardLogger)(next)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good-token")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, principal, *seen)
		mockProvider.AssertExpectations(t)
	})

	t.Run("success - access token cookie", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		mockProvider := auth.NewMockAuthProvider()
		mockProvider.On("Verify", "cookie-token").Return(principal, nil)

		next, seen, _ := principalEcho(t)
		h := authn.Required(mockProvider, discardLogger)(next)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: authn.AccessTokenCookie, Value: "cookie-token"})

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, principal, *seen)
	})

	t.Run("success - cookie wins over header", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		mockProvider := auth.NewMockAuthProvider()
		mockProvider.On("Verify", "cookie-token").Return(principal, nil)

		next, _, _ := principalEcho(t)
		h := authn.Required(mockProvider, discardLogger)(next)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: authn.AccessTokenCookie, Value: "cookie-token"})
		req.Header.Set("Authorization", "Bearer header-token")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		mockProvider.AssertNotCalled(t, "Verify", "header-token")
	})

	t.Run("error - no token at all", func(t *testing.T) {
		// Arrange
		mockProvider := auth.NewMockAuthProvider()

		next, _, called := principalEcho(t)
		h := authn.Required(mockProvider, discardLogger)(next)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *called)
		mockProvider.AssertNotCalled(t, "Verify")
	})

	t.Run("error - rejected token", func(t *testing.T) {
		// Arrange
		mockProvider := auth.NewMockAuthProvider()
		mockProvider.On("Verify", "bad-token").Return(domain.Principal{}, domain.ErrUnauthorized)

		next, _, called := principalEcho(t)
		h := authn.Required(mockProvider, discardLogger)(next)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bad-token")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *called)
	})
}

func TestOptional(t *testing.T) {
	t.Run("anonymous request passes through", func(t *testing.T) {
		// Arrange
		mockProvider := auth.NewMockAuthProvider()

		next, _, called := principalEcho(t)
		h := authn.Optional(mockProvider)(next)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *called)
		mockProvider.AssertNotCalled(t, "Verify")
	})

	t.Run("valid token attaches the principal", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		mockProvider := auth.NewMockAuthProvider()
		mockProvider.On("Verify", "good-token").Return(principal, nil)

		next, seen, _ := principalEcho(t)
		h := authn.Optional(mockProvider)(next)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good-token")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, principal, *seen)
	})

	t.Run("rejected token still passes through anonymously", func(t *testing.T) {
		// Arrange
		mockProvider := auth.NewMockAuthProvider()
		mockProvider.On("Verify", "bad-token").Return(domain.Principal{}, domain.ErrUnauthorized)

		next, seen, called := principalEcho(t)
		h := authn.Optional(mockProvider)(next)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bad-token")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *called)
		assert.Equal(t, domain.Principal{}, *seen)
	})
}
