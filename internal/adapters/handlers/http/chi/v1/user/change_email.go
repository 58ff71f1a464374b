package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// V1ChangeEmailRequest is the request to replace the account email
type V1ChangeEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ChangeEmailV1 is the function that handles email changes
func (h *HandlerV1) ChangeEmailV1(w http.ResponseWriter, r *http.Request) {

	principal, ok := authn.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing credentials", http.StatusUnauthorized)
		return
	}

	var req V1ChangeEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.userService.ChangeEmail(r.Context(), principal, req.Email)
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrConflict):
		http.Error(w, "email already taken", http.StatusConflict)
		return
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error changing email", "user_id", principal.UserID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		h.writeJSON(w, http.StatusOK, userResponse(updated))
		return
	}
}
