package video

import (
	"errors"
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// DeleteVideoV1 is the function that handles video deletion. The video,
// its comments and its likes go away together, so a second delete of the
// same id reports not found.
func (h *HandlerV1) DeleteVideoV1(w http.ResponseWriter, r *http.Request) {

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

	err := h.videoService.Delete(r.Context(), principal, videoID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "video not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, "not the owner of this video", http.StatusForbidden)
		return
	case err != nil:
		h.logger.Error("error deleting video", "video_id", videoID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}
