package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
)

// V1LoginRequest is the request to open a session. Login accepts a
// username or an email.
type V1LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// V1LoginResponse is the response to a successful login. Tokens are also
// set as httponly cookies for browser clients.
type V1LoginResponse struct {
	User         V1UserResponse `json:"user"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
}

// LoginV1 is the function that handles credential verification
func (h *HandlerV1) LoginV1(w http.ResponseWriter, r *http.Request) {

	var req V1LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, tokens, err := h.userService.Login(r.Context(), port.LoginInput{
		Login:    req.Login,
		Password: req.Password,
	})
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	case err != nil:
		h.logger.Error("error logging in", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		h.setTokenCookies(w, tokens)
		h.writeJSON(w, http.StatusOK, V1LoginResponse{
			User:         userResponse(account),
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		})
		return
	}
}
