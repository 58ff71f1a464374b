package video

import (
	"errors"
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// ReplaceThumbnailV1 is the function that handles thumbnail replacement.
// The new image is uploaded and persisted before the old one is removed.
func (h *HandlerV1) ReplaceThumbnailV1(w http.ResponseWriter, r *http.Request) {

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

	r.Body = http.MaxBytesReader(w, r.Body, h.maxThumbnailSize+maxMultipartMemory)
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	thumbnailFile, err := h.stageFormFile(r, "thumbnail", h.maxThumbnailSize)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if thumbnailFile == nil {
		http.Error(w, "thumbnail file is required", http.StatusBadRequest)
		return
	}

	updated, replaceErr := h.videoService.ReplaceThumbnail(r.Context(), principal, videoID, thumbnailFile)
	switch {
	case errors.Is(replaceErr, domain.ErrValidation):
		http.Error(w, replaceErr.Error(), http.StatusBadRequest)
		return
	case errors.Is(replaceErr, domain.ErrNotFound):
		http.Error(w, "video not found", http.StatusNotFound)
		return
	case errors.Is(replaceErr, domain.ErrForbidden):
		http.Error(w, "not the owner of this video", http.StatusForbidden)
		return
	case errors.Is(replaceErr, domain.ErrUploadFailed):
		h.logger.Error("error uploading thumbnail", "video_id", videoID, "error", replaceErr)
		http.Error(w, "upload failed", http.StatusInternalServerError)
		return
	case replaceErr != nil:
		h.logger.Error("error replacing thumbnail", "video_id", videoID, "error", replaceErr)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		h.writeJSON(w, http.StatusOK, videoResponse(updated))
		return
	}
}
