package video

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
)

// V1UpdateVideoRequest carries partial metadata updates, absent fields
// keep their current values
type V1UpdateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Published   *bool   `json:"published"`
}

// UpdateVideoV1 is the function that handles metadata updates
func (h *HandlerV1) UpdateVideoV1(w http.ResponseWriter, r *http.Request) {

	principal, ok := authn.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing credentials", http.StatusUnauthorized)
		return
	}

	videoID, parseErr := parseVideoID(r)
	if parseErr != nil {
		http.Error(w, "invalid video id", http.StatusBadRequest)
		return
	}

	var req V1UpdateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == nil && req.Description == nil && req.Published == nil {
		http.Error(w, "nothing to update", http.StatusBadRequest)
		return
	}

	in := port.UpdateVideoInput{
		Title:       req.Title,
		Description: req.Description,
		Published:   req.Published,
	}

	updated, err := h.videoService.UpdateMetadata(r.Context(), principal, videoID, in)
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "video not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, "not the owner of this video", http.StatusForbidden)
		return
	case err != nil:
		h.logger.Error("error updating video", "video_id", videoID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		h.writeJSON(w, http.StatusOK, videoResponse(updated))
		return
	}
}
