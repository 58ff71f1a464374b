package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// V1RefreshRequest carries an explicit refresh token for non-browser
// clients; browsers rely on the cookie instead
type V1RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// V1RefreshResponse is the freshly rotated token pair
type V1RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshV1 is the function that handles refresh token rotation. The
// presented token is compared against the stored one and both are
// replaced, so a replayed token is rejected.
func (h *HandlerV1) RefreshV1(w http.ResponseWriter, r *http.Request) {

	token := ""
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		token = cookie.Value
	}
	if token == "" {
		var req V1RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		http.Error(w, "missing refresh token", http.StatusUnauthorized)
		return
	}

	tokens, err := h.userService.Refresh(r.Context(), token)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		h.clearTokenCookies(w)
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	case err != nil:
		h.logger.Error("error refreshing session", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		h.setTokenCookies(w, tokens)
		h.writeJSON(w, http.StatusOK, V1RefreshResponse{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		})
		return
	}
}
