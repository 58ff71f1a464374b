package user

import (
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
)

// LogoutV1 is the function that handles session termination. The stored
// refresh token is dropped and both cookies are cleared.
func (h *HandlerV1) LogoutV1(w http.ResponseWriter, r *http.Request) {

	principal, ok := authn.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing credentials", http.StatusUnauthorized)
		return
	}

	if err := h.userService.Logout(r.Context(), principal); err != nil {
		h.logger.Error("error logging out", "user_id", principal.UserID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.clearTokenCookies(w)
	w.WriteHeader(http.StatusNoContent)
}
