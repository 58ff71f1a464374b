package comment

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

// HandlerV1 is the handler for v1 comment routes
type HandlerV1 struct {
	commentService port.CommentService
	logger         *slog.Logger
}

// NewCommentHandlerV1 creates HandlerV1
func NewCommentHandlerV1(service port.CommentService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		commentService: service,
		logger:         logger,
	}
}

// VideoRoutes exposes the routes mounted under a video's path
func (h *HandlerV1) VideoRoutes(requireAuth func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListCommentsV1)
	router.With(requireAuth).Post("/", h.CreateCommentV1)

	return router
}

// Routes exposes the routes addressing a comment by its own id
func (h *HandlerV1) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.With(requireAuth).Delete("/{commentID}", h.DeleteCommentV1)

	return router
}

// V1CommentResponse is the wire representation of a comment
type V1CommentResponse struct {
	ID             uuid.UUID `json:"id"`
	VideoID        uuid.UUID `json:"video_id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username,omitempty"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

func commentResponse(c *domain.Comment) V1CommentResponse {
	return V1CommentResponse{
		ID:        c.ID,
		VideoID:   c.VideoID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
