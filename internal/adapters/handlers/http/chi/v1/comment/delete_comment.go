package comment

import (
	"errors"
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
	"github.com/NomanKhan13/focusTube/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DeleteCommentV1 is the function that handles comment deletion by its author
func (h *HandlerV1) DeleteCommentV1(w http.ResponseWriter, r *http.Request) {

	principal, ok := authn.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing credentials", http.StatusUnauthorized)
		return
	}

	commentID, parseErr := uuid.Parse(chi.URLParam(r, "commentID"))
	if parseErr != nil {
		http.Error(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	err := h.commentService.Delete(r.Context(), principal, commentID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "comment not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, "not the author of this comment", http.StatusForbidden)
		return
	case err != nil:
		h.logger.Error("error deleting comment", "comment_id", commentID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}
