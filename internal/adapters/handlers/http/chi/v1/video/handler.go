package video

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 video routes
type HandlerV1 struct {
	videoService     port.VideoService
	staging          port.StagingArea
	maxVideoSize     int64
	maxThumbnailSize int64
	logger           *slog.Logger
}

// NewVideoHandlerV1 creates HandlerV1
func NewVideoHandlerV1(service port.VideoService, staging port.StagingArea, maxVideoSize, maxThumbnailSize int64, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		videoService:     service,
		staging:          staging,
		maxVideoSize:     maxVideoSize,
		maxThumbnailSize: maxThumbnailSize,
		logger:           logger,
	}
}

// Routes exposes handler routes. Comment and like subrouters are mounted
// under the video they belong to so they can read {videoID} from the path.
func (h *HandlerV1) Routes(requireAuth, optionalAuth func(http.Handler) http.Handler, comments, likes chi.Router) chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListVideosV1)
	router.With(requireAuth).Post("/", h.PublishVideoV1)
	router.With(optionalAuth).Get("/{videoID}", h.GetVideoV1)
	router.With(requireAuth).Patch("/{videoID}", h.UpdateVideoV1)
	router.With(requireAuth).Delete("/{videoID}", h.DeleteVideoV1)
	router.With(requireAuth).Put("/{videoID}/thumbnail", h.ReplaceThumbnailV1)
	router.Post("/{videoID}/views", h.RecordViewV1)

	router.Mount("/{videoID}/comments", comments)
	router.Mount("/{videoID}/likes", likes)

	return router
}

// OwnerRoutes exposes the channel listing mounted under a user's path
func (h *HandlerV1) OwnerRoutes(optionalAuth func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.With(optionalAuth).Get("/", h.ListUserVideosV1)

	return router
}

// V1VideoResponse is the wire representation of a video
type V1VideoResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	MediaRef        string    `json:"media_ref"`
	ThumbnailRef    *string   `json:"thumbnail_ref,omitempty"`
	OwnerID         uuid.UUID `json:"owner_id"`
	OwnerUsername   string    `json:"owner_username,omitempty"`
	DurationSeconds float64   `json:"duration_seconds"`
	Views           int64     `json:"views"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func videoResponse(v *domain.Video) V1VideoResponse {
	return V1VideoResponse{
		ID:              v.ID,
		Title:           v.Title,
		Description:     v.Description,
		MediaRef:        v.MediaRef,
		ThumbnailRef:    v.ThumbnailRef,
		OwnerID:         v.OwnerID,
		DurationSeconds: v.DurationSeconds,
		Views:           v.Views,
		Published:       v.Published,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func videoWithOwnerResponse(v *domain.VideoWithOwner) V1VideoResponse {
	resp := videoResponse(&v.Video)
	resp.OwnerUsername = v.OwnerUsername
	return resp
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func parseVideoID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "videoID"))
}
