package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// V1ChangePasswordRequest is the request to replace the current password.
// The new password is entered twice as a typo guard.
type V1ChangePasswordRequest struct {
	OldPassword        string `json:"old_password" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required,min=8,max=72"`
	ConfirmNewPassword string `json:"confirm_new_password" validate:"required,eqfield=NewPassword"`
}

// ChangePasswordV1 is the function that handles password changes. The
// current password is re-verified; a wrong one is rejected like a failed
// login.
func (h *HandlerV1) ChangePasswordV1(w http.ResponseWriter, r *http.Request) {

	principal, ok := authn.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing credentials", http.StatusUnauthorized)
		return
	}

	var req V1ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.userService.ChangePassword(r.Context(), principal, req.OldPassword, req.NewPassword)
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrUnauthorized):
		http.Error(w, "invalid old password", http.StatusUnauthorized)
		return
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error changing password", "user_id", principal.UserID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}
