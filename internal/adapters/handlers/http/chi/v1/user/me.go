package user

import (
	"errors"
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// MeV1 is the function that handles fetching the authenticated account's
// own profile
func (h *HandlerV1) MeV1(w http.ResponseWriter, r *http.Request) {

	principal, ok := authn.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing credentials", http.StatusUnauthorized)
		return
	}

	account, err := h.userService.Get(r.Context(), principal)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error fetching user", "user_id", principal.UserID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		h.writeJSON(w, http.StatusOK, userResponse(account))
		return
	}
}
