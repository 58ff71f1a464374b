package video

import (
	"errors"
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// RecordViewV1 is the function that handles view counting
func (h *HandlerV1) RecordViewV1(w http.ResponseWriter, r *http.Request) {

	videoID, parseErr := parseVideoID(r)
	if parseErr != nil {
		http.Error(w, "invalid video id", http.StatusBadRequest)
		return
	}

	err := h.videoService.RecordView(r.Context(), videoID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "video not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error recording view", "video_id", videoID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}
