package like

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 like routes
type HandlerV1 struct {
	likeService port.LikeService
	logger      *slog.Logger
}

// NewLikeHandlerV1 creates HandlerV1
func NewLikeHandlerV1(service port.LikeService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		likeService: service,
		logger:      logger,
	}
}

// VideoRoutes exposes the routes mounted under a video's path
func (h *HandlerV1) VideoRoutes(requireAuth func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.CountLikesV1)
	router.With(requireAuth).Post("/", h.LikeVideoV1)
	router.With(requireAuth).Delete("/", h.UnlikeVideoV1)

	return router
}

// V1LikeCountResponse is the like tally for a video
type V1LikeCountResponse struct {
	VideoID uuid.UUID `json:"video_id"`
	Likes   int64     `json:"likes"`
}

// CountLikesV1 is the function that handles reading a video's like count
func (h *HandlerV1) CountLikesV1(w http.ResponseWriter, r *http.Request) {

	videoID, parseErr := uuid.Parse(chi.URLParam(r, "videoID"))
	if parseErr != nil {
		http.Error(w, "invalid video id", http.StatusBadRequest)
		return
	}

	count, err := h.likeService.Count(r.Context(), videoID)
	if err != nil {
		h.logger.Error("error counting likes", "video_id", videoID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(V1LikeCountResponse{VideoID: videoID, Likes: count}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

// LikeVideoV1 is the function that handles liking a video. Liking twice
// reports a conflict.
func (h *HandlerV1) LikeVideoV1(w http.ResponseWriter, r *http.Request) {

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

	err := h.likeService.Like(r.Context(), principal, videoID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "video not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrConflict):
		http.Error(w, "already liked", http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error liking video", "video_id", videoID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}

// UnlikeVideoV1 is the function that handles removing a like
func (h *HandlerV1) UnlikeVideoV1(w http.ResponseWriter, r *http.Request) {

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

	err := h.likeService.Unlike(r.Context(), principal, videoID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "like not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error unliking video", "video_id", videoID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}
