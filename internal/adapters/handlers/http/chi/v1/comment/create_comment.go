package comment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
	"github.com/NomanKhan13/focusTube/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1CreateCommentRequest is the request to comment on a video
type V1CreateCommentRequest struct {
	Body string `json:"body"`
}

// CreateCommentV1 is the function that handles comment creation
func (h *HandlerV1) CreateCommentV1(w http.ResponseWriter, r *http.Request) {

	principal, ok := authn.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing credentials", http.StatusUnauthorized)
		return
	}

	videoID, parseErr := uuid.Parse(chi.URLParam(r, "videoID"))
	if parseErr != nil {
		http.Error(w, "invalid video id", http.StatusBadRequest)
		return
	}

	var req V1CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.commentService.Create(r.Context(), principal, videoID, req.Body)
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "video not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error creating comment", "video_id", videoID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		h.writeJSON(w, http.StatusCreated, commentResponse(created))
		return
	}
}
