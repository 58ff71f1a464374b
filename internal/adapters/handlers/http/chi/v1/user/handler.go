package user

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 user routes
type HandlerV1 struct {
	userService     port.UserService
	validate        *validator.Validate
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	secureCookies   bool
	logger          *slog.Logger
}

// NewUserHandlerV1 creates HandlerV1. secureCookies should be true outside
// local development so tokens only travel over https.
func NewUserHandlerV1(service port.UserService, accessTokenTTL, refreshTokenTTL time.Duration, secureCookies bool, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		userService:     service,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		secureCookies:   secureCookies,
		logger:          logger,
	}
}

// Routes exposes handler routes. ownerVideos is the channel listing mounted
// under a user's path so it can read {userID}.
func (h *HandlerV1) Routes(requireAuth func(http.Handler) http.Handler, ownerVideos chi.Router) chi.Router {
	router := chi.NewRouter()

	router.Post("/register", h.RegisterV1)
	router.Post("/login", h.LoginV1)
	router.Post("/refresh", h.RefreshV1)
	router.With(requireAuth).Post("/logout", h.LogoutV1)
	router.With(requireAuth).Get("/me", h.MeV1)
	router.With(requireAuth).Put("/change-password", h.ChangePasswordV1)
	router.With(requireAuth).Put("/change-email", h.ChangeEmailV1)

	router.Mount("/{userID}/videos", ownerVideos)

	return router
}

// V1UserResponse is the public representation of an account
type V1UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func userResponse(u *domain.User) V1UserResponse {
	return V1UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func (h *HandlerV1) setTokenCookies(w http.ResponseWriter, tokens *domain.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    tokens.AccessToken,
		Path:     "/",
		MaxAge:   int(h.accessTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    tokens.RefreshToken,
		Path:     "/api/v1/users",
		MaxAge:   int(h.refreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *HandlerV1) clearTokenCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/users",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}
