package video

import (
	"errors"
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// GetVideoV1 is the function that handles fetching a single video.
// Unpublished videos are only visible to their owner, everyone else
// gets a not found.
func (h *HandlerV1) GetVideoV1(w http.ResponseWriter, r *http.Request) {

	videoID, parseErr := parseVideoID(r)
	if parseErr != nil {
		http.Error(w, "invalid video id", http.StatusBadRequest)
		return
	}

	var viewer *domain.Principal
	if principal, ok := authn.FromContext(r.Context()); ok {
		viewer = &principal
	}

	found, err := h.videoService.Get(r.Context(), viewer, videoID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "video not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error getting video", "video_id", videoID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		h.writeJSON(w, http.StatusOK, videoWithOwnerResponse(found))
		return
	}
}
