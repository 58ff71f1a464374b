package comment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/NomanKhan13/focusTube/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1ListCommentsResponse is the paginated comment listing
type V1ListCommentsResponse struct {
	Comments []V1CommentResponse `json:"comments"`
	Page     int                 `json:"page"`
	Limit    int                 `json:"limit"`
}

// ListCommentsV1 is the function that handles listing a video's comments
func (h *HandlerV1) ListCommentsV1(w http.ResponseWriter, r *http.Request) {

	videoID, parseErr := uuid.Parse(chi.URLParam(r, "videoID"))
	if parseErr != nil {
		http.Error(w, "invalid video id", http.StatusBadRequest)
		return
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

	comments, err := h.commentService.ListByVideo(r.Context(), videoID, page, limit)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "video not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error listing comments", "video_id", videoID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		resp := V1ListCommentsResponse{
			Comments: make([]V1CommentResponse, 0, len(comments)),
			Page:     page,
			Limit:    limit,
		}
		for i := range comments {
			item := commentResponse(&comments[i].Comment)
			item.AuthorUsername = comments[i].AuthorUsername
			resp.Comments = append(resp.Comments, item)
		}
		h.writeJSON(w, http.StatusOK, resp)
		return
	}
}
