package video

import (
	"net/http"
	"strconv"

	"github.com/NomanKhan13/focusTube/internal/core/port"
)

// V1ListVideosResponse is the paginated video listing
type V1ListVideosResponse struct {
	Videos []V1VideoResponse `json:"videos"`
	Total  int64             `json:"total"`
	Page   int               `json:"page"`
	Limit  int               `json:"limit"`
}

// ListVideosV1 is the function that handles listing published videos
func (h *HandlerV1) ListVideosV1(w http.ResponseWriter, r *http.Request) {

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

	in := port.ListVideosInput{
		Page:  page,
		Limit: limit,
		Query: r.URL.Query().Get("query"),
		Sort:  r.URL.Query().Get("sort"),
	}

	videos, total, err := h.videoService.List(r.Context(), in)
	if err != nil {
		h.logger.Error("error listing videos", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := V1ListVideosResponse{
		Videos: make([]V1VideoResponse, 0, len(videos)),
		Total:  total,
		Page:   in.Page,
		Limit:  in.Limit,
	}
	for i := range videos {
		resp.Videos = append(resp.Videos, videoWithOwnerResponse(&videos[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}
