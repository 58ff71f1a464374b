package video

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
)

// maxMultipartMemory caps how much of a parsed form is held in memory,
// the rest spills to the staging copy anyway
const maxMultipartMemory = 32 << 20

// PublishVideoV1 is the function that handles video publication. It accepts
// a multipart form with a required "video" part and an optional "thumbnail".
func (h *HandlerV1) PublishVideoV1(w http.ResponseWriter, r *http.Request) {

	principal, ok := authn.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing credentials", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxVideoSize+h.maxThumbnailSize+maxMultipartMemory)
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	videoFile, err := h.stageFormFile(r, "video", h.maxVideoSize)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if videoFile == nil {
		http.Error(w, "video file is required", http.StatusBadRequest)
		return
	}

	thumbnailFile, err := h.stageFormFile(r, "thumbnail", h.maxThumbnailSize)
	if err != nil {
		h.discard(videoFile)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in := port.PublishVideoInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Published:   r.FormValue("published") != "false",
		Video:       videoFile,
		Thumbnail:   thumbnailFile,
	}

	created, publishErr := h.videoService.Publish(r.Context(), principal, in)
	switch {
	case errors.Is(publishErr, domain.ErrValidation):
		http.Error(w, publishErr.Error(), http.StatusBadRequest)
		return
	case errors.Is(publishErr, domain.ErrUploadFailed):
		h.logger.Error("error uploading video", "error", publishErr)
		http.Error(w, "upload failed", http.StatusInternalServerError)
		return
	case publishErr != nil:
		h.logger.Error("error publishing video", "error", publishErr)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		h.writeJSON(w, http.StatusCreated, videoResponse(created))
		return
	}
}

// stageFormFile copies a multipart part into the staging area. A missing
// part is not an error, it returns nil so optional parts stay optional.
func (h *HandlerV1) stageFormFile(r *http.Request, field string, maxSize int64) (*domain.StagedFile, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.New("invalid " + field + " file")
	}
	defer file.Close()

	if header.Size > maxSize {
		return nil, errors.New(field + " file is too large")
	}

	staged, err := h.staging.Stage(file, header.Filename, partContentType(header))
	if err != nil {
		h.logger.Error("error staging uploaded file", "field", field, "error", err)
		return nil, errors.New("could not accept " + field + " file")
	}
	return staged, nil
}

func partContentType(header *multipart.FileHeader) string {
	return header.Header.Get("Content-Type")
}

func (h *HandlerV1) discard(f *domain.StagedFile) {
	if err := h.staging.Discard(f); err != nil {
		h.logger.Warn("error discarding staged file", "path", f.Path, "error", err)
	}
}
