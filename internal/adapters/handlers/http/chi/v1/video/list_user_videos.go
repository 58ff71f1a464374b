package video

import (
	"net/http"
	"strconv"

	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListUserVideosV1 is the function that handles listing one channel's videos.
// The channel owner also sees their drafts; everyone else only published ones.
func (h *HandlerV1) ListUserVideosV1(w http.ResponseWriter, r *http.Request) {

	ownerID, parseErr := uuid.Parse(chi.URLParam(r, "userID"))
	if parseErr != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var viewer *domain.Principal
	if principal, ok := authn.FromContext(r.Context()); ok {
		viewer = &principal
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	videos, total, err := h.videoService.ListByOwner(r.Context(), viewer, ownerID, port.ListVideosInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		h.logger.Error("error listing channel videos", "owner_id", ownerID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := V1ListVideosResponse{
		Videos: make([]V1VideoResponse, 0, len(videos)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	for i := range videos {
		resp.Videos = append(resp.Videos, videoResponse(&videos[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}
