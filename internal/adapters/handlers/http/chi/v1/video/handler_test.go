package video_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	http2 "net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/NomanKhan13/focusTube/internal/adapters/auth/jwt"
	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi"
	comment3 "github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/v1/comment"
	like3 "github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/v1/like"
	user3 "github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/v1/user"
	video3 "github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/v1/video"
	"github.com/NomanKhan13/focusTube/internal/adapters/staging"
	"github.com/NomanKhan13/focusTube/internal/config"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/NomanKhan13/focusTube/internal/core/service/comment"
	"github.com/NomanKhan13/focusTube/internal/core/service/like"
	"github.com/NomanKhan13/focusTube/internal/core/service/user"
	"github.com/NomanKhan13/focusTube/internal/core/service/video"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testAuthConfig = config.AuthConfig{
	AccessTokenSecret:  "test-access-secret",
	RefreshTokenSecret: "test-refresh-secret",
	AccessTokenTTL:     15 * time.Minute,
	RefreshTokenTTL:    168 * time.Hour,
}

func newTestRouter(t *testing.T, videoService port.VideoService) http2.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stagingArea, err := staging.NewDiskStagingArea(t.TempDir())
	require.NoError(t, err)

	userHandler := user3.NewUserHandlerV1(user.NewMockUserService(), 15*time.Minute, 168*time.Hour, false, logger)
	videoHandler := video3.NewVideoHandlerV1(videoService, stagingArea, 1<<30, 5<<20, logger)
	commentHandler := comment3.NewCommentHandlerV1(comment.NewMockCommentService(), logger)
	likeHandler := like3.NewLikeHandlerV1(like.NewMockLikeService(), logger)

	return chi.NewRouter(logger, jwt.NewProvider(testAuthConfig), userHandler, videoHandler, commentHandler, likeHandler, "test")
}

func accessTokenFor(t *testing.T, principal domain.Principal) string {
	t.Helper()

	token, err := jwt.NewProvider(testAuthConfig).IssueAccessToken(principal)
	require.NoError(t, err)
	return token
}

func sampleVideoWithOwner(ownerID uuid.UUID, username string, published bool) *domain.VideoWithOwner {
	desc := "a test video"
	return &domain.VideoWithOwner{
		Video: domain.Video{
			ID:              uuid.New(),
			Title:           "First upload",
			Description:     &desc,
			MediaRef:        "videos/" + uuid.NewString() + ".mp4",
			OwnerID:         ownerID,
			DurationSeconds: 12.5,
			Views:           3,
			Published:       published,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		},
		OwnerUsername: username,
	}
}

func uploadBody(t *testing.T, fields map[string]string, includeVideo, includeThumbnail bool) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	if includeVideo {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="video"; filename="clip.mp4"`)
		hdr.Set("Content-Type", "video/mp4")
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake mp4 payload"))
		require.NoError(t, err)
	}
	if includeThumbnail {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="thumbnail"; filename="cover.png"`)
		hdr.Set("Content-Type", "image/png")
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake png payload"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestListVideosV1(t *testing.T) {
	t.Run("success - lists published videos with defaults", func(t *testing.T) {
		// Arrange
		owner := uuid.New()
		found := sampleVideoWithOwner(owner, "alice", true)

		mockService := video.NewMockVideoService()
		mockService.On("List", mock.Anything, port.ListVideosInput{Page: 1, Limit: 10}).
			Return([]domain.VideoWithOwner{*found}, int64(1), nil)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/videos/", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response video3.V1ListVideosResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, int64(1), response.Total)
		assert.Equal(t, 1, response.Page)
		assert.Equal(t, 10, response.Limit)
		require.Len(t, response.Videos, 1)
		assert.Equal(t, found.ID, response.Videos[0].ID)
		assert.Equal(t, "alice", response.Videos[0].OwnerUsername)

		mockService.AssertExpectations(t)
	})

	t.Run("success - oversized limit is capped", func(t *testing.T) {
		// Arrange
		mockService := video.NewMockVideoService()
		mockService.On("List", mock.Anything, port.ListVideosInput{Page: 3, Limit: 50, Query: "cats"}).
			Return([]domain.VideoWithOwner{}, int64(0), nil)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/videos/?page=3&limit=500&query=cats", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response video3.V1ListVideosResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, 3, response.Page)
		assert.Equal(t, 50, response.Limit)
		assert.Empty(t, response.Videos)

		mockService.AssertExpectations(t)
	})

	t.Run("error - service failure", func(t *testing.T) {
		// Arrange
		mockService := video.NewMockVideoService()
		mockService.On("List", mock.Anything, mock.Anything).
			Return([]domain.VideoWithOwner(nil), int64(0), assert.AnError)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/videos/", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusInternalServerError, w.Code)
	})
}

func TestGetVideoV1(t *testing.T) {
	t.Run("success - anonymous viewer", func(t *testing.T) {
		// Arrange
		found := sampleVideoWithOwner(uuid.New(), "alice", true)

		mockService := video.NewMockVideoService()
		mockService.On("Get", mock.Anything, (*domain.Principal)(nil), found.ID).
			Return(found, nil)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/videos/"+found.ID.String(), nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response video3.V1VideoResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, found.ID, response.ID)
		assert.Equal(t, "alice", response.OwnerUsername)

		mockService.AssertExpectations(t)
	})

	t.Run("success - bearer token attaches the viewer", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		found := sampleVideoWithOwner(principal.UserID, "alice", false)

		mockService := video.NewMockVideoService()
		mockService.On("Get", mock.Anything, mock.MatchedBy(func(viewer *domain.Principal) bool {
			return viewer != nil && viewer.UserID == principal.UserID
		}), found.ID).Return(found, nil)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/videos/"+found.ID.String(), nil)
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - video not found", func(t *testing.T) {
		// Arrange
		mockService := video.NewMockVideoService()
		mockService.On("Get", mock.Anything, (*domain.Principal)(nil), mock.Anything).
			Return((*domain.VideoWithOwner)(nil), domain.ErrNotFound)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/videos/"+uuid.NewString(), nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
	})

	t.Run("error - malformed id", func(t *testing.T) {
		// Arrange
		mockService := video.NewMockVideoService()

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/videos/not-a-uuid", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Get")
	})
}

func TestPublishVideoV1(t *testing.T) {
	t.Run("success - publishes a staged upload", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		created := &sampleVideoWithOwner(principal.UserID, "alice", true).Video

		mockService := video.NewMockVideoService()
		mockService.On("Publish", mock.Anything, principal, mock.MatchedBy(func(in port.PublishVideoInput) bool {
			return in.Title == "First upload" &&
				in.Published &&
				in.Video != nil && in.Video.ContentType == "video/mp4" &&
				in.Thumbnail != nil && in.Thumbnail.ContentType == "image/png"
		})).Return(created, nil)

		h := newTestRouter(t, mockService)
		body, contentType := uploadBody(t, map[string]string{"title": "First upload"}, true, true)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/videos/", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusCreated, w.Code)

		var response video3.V1VideoResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, created.ID, response.ID)
		assert.Equal(t, principal.UserID, response.OwnerID)

		mockService.AssertExpectations(t)
	})

	t.Run("success - published=false keeps a draft", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		created := &sampleVideoWithOwner(principal.UserID, "alice", false).Video

		mockService := video.NewMockVideoService()
		mockService.On("Publish", mock.Anything, principal, mock.MatchedBy(func(in port.PublishVideoInput) bool {
			return !in.Published && in.Thumbnail == nil
		})).Return(created, nil)

		h := newTestRouter(t, mockService)
		body, contentType := uploadBody(t, map[string]string{"title": "Draft", "published": "false"}, true, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/videos/", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - missing credentials", func(t *testing.T) {
		// Arrange
		mockService := video.NewMockVideoService()

		h := newTestRouter(t, mockService)
		body, contentType := uploadBody(t, map[string]string{"title": "First upload"}, true, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/videos/", body)
		req.Header.Set("Content-Type", contentType)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Publish")
	})

	t.Run("error - missing video part", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		mockService := video.NewMockVideoService()

		h := newTestRouter(t, mockService)
		body, contentType := uploadBody(t, map[string]string{"title": "First upload"}, false, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/videos/", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Publish")
	})

	t.Run("error - rejected title maps to bad request", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}

		mockService := video.NewMockVideoService()
		mockService.On("Publish", mock.Anything, principal, mock.Anything).
			Return((*domain.Video)(nil), domain.ErrValidation)

		h := newTestRouter(t, mockService)
		body, contentType := uploadBody(t, map[string]string{"title": "   "}, true, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/videos/", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})

	t.Run("error - media store failure maps to server error", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}

		mockService := video.NewMockVideoService()
		mockService.On("Publish", mock.Anything, principal, mock.Anything).
			Return((*domain.Video)(nil), domain.ErrUploadFailed)

		h := newTestRouter(t, mockService)
		body, contentType := uploadBody(t, map[string]string{"title": "First upload"}, true, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/videos/", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusInternalServerError, w.Code)
	})
}

func TestDeleteVideoV1(t *testing.T) {
	t.Run("success - owner deletes the video", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		videoID := uuid.New()

		mockService := video.NewMockVideoService()
		mockService.On("Delete", mock.Anything, principal, videoID).Return(nil)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodDelete, "/api/v1/videos/"+videoID.String(), nil)
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - not the owner", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "bob"}
		videoID := uuid.New()

		mockService := video.NewMockVideoService()
		mockService.On("Delete", mock.Anything, principal, videoID).Return(domain.ErrForbidden)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodDelete, "/api/v1/videos/"+videoID.String(), nil)
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusForbidden, w.Code)
	})

	t.Run("error - already deleted", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		videoID := uuid.New()

		mockService := video.NewMockVideoService()
		mockService.On("Delete", mock.Anything, principal, videoID).Return(domain.ErrNotFound)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodDelete, "/api/v1/videos/"+videoID.String(), nil)
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
	})

	t.Run("error - expired token", func(t *testing.T) {
		// Arrange
		expiredCfg := testAuthConfig
		expiredCfg.AccessTokenTTL = -time.Minute
		token, err := jwt.NewProvider(expiredCfg).IssueAccessToken(domain.Principal{UserID: uuid.New(), Username: "alice"})
		require.NoError(t, err)

		mockService := video.NewMockVideoService()

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodDelete, "/api/v1/videos/"+uuid.NewString(), nil)
		req.Header.Set("Authorization", "Bearer "+token)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Delete")
	})
}

func TestRecordViewV1(t *testing.T) {
	t.Run("success - view recorded anonymously", func(t *testing.T) {
		// Arrange
		videoID := uuid.New()

		mockService := video.NewMockVideoService()
		mockService.On("RecordView", mock.Anything, videoID).Return(nil)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/videos/"+videoID.String()+"/views", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("error - unknown video", func(t *testing.T) {
		// Arrange
		videoID := uuid.New()

		mockService := video.NewMockVideoService()
		mockService.On("RecordView", mock.Anything, videoID).Return(domain.ErrNotFound)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/videos/"+videoID.String()+"/views", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
	})
}

func TestUpdateVideoV1(t *testing.T) {
	t.Run("success - partial update", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		updated := &sampleVideoWithOwner(principal.UserID, "alice", true).Video
		updated.Title = "Renamed"
		newTitle := "Renamed"

		mockService := video.NewMockVideoService()
		mockService.On("UpdateMetadata", mock.Anything, principal, updated.ID, port.UpdateVideoInput{Title: &newTitle}).
			Return(updated, nil)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPatch, "/api/v1/videos/"+updated.ID.String(),
			bytes.NewBufferString(`{"title":"Renamed"}`))
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response video3.V1VideoResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "Renamed", response.Title)

		mockService.AssertExpectations(t)
	})

	t.Run("error - empty patch", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		mockService := video.NewMockVideoService()

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPatch, "/api/v1/videos/"+uuid.NewString(),
			bytes.NewBufferString(`{}`))
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "UpdateMetadata")
	})

	t.Run("error - not the owner", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "bob"}
		videoID := uuid.New()

		mockService := video.NewMockVideoService()
		mockService.On("UpdateMetadata", mock.Anything, principal, videoID, mock.Anything).
			Return((*domain.Video)(nil), domain.ErrForbidden)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPatch, "/api/v1/videos/"+videoID.String(),
			bytes.NewBufferString(`{"published":false}`))
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusForbidden, w.Code)
	})
}

func TestReplaceThumbnailV1(t *testing.T) {
	t.Run("success - thumbnail replaced", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		updated := &sampleVideoWithOwner(principal.UserID, "alice", true).Video
		ref := "thumbnails/new.png"
		updated.ThumbnailRef = &ref

		mockService := video.NewMockVideoService()
		mockService.On("ReplaceThumbnail", mock.Anything, principal, updated.ID,
			mock.MatchedBy(func(f *domain.StagedFile) bool {
				return f != nil && f.ContentType == "image/png"
			})).Return(updated, nil)

		h := newTestRouter(t, mockService)
		body, contentType := uploadBody(t, nil, false, true)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPut, "/api/v1/videos/"+updated.ID.String()+"/thumbnail", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response video3.V1VideoResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.NotNil(t, response.ThumbnailRef)
		assert.Equal(t, ref, *response.ThumbnailRef)

		mockService.AssertExpectations(t)
	})

	t.Run("error - missing thumbnail part", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		mockService := video.NewMockVideoService()

		h := newTestRouter(t, mockService)
		body, contentType := uploadBody(t, map[string]string{"unused": "field"}, false, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodPut, "/api/v1/videos/"+uuid.NewString()+"/thumbnail", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+accessTokenFor(t, principal))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ReplaceThumbnail")
	})
}

func TestListUserVideosV1(t *testing.T) {
	t.Run("success - anonymous viewers see published videos", func(t *testing.T) {
		// Arrange
		owner := uuid.New()
		published := sampleVideoWithOwner(owner, "alice", true).Video

		mockService := video.NewMockVideoService()
		mockService.On("ListByOwner", mock.Anything, (*domain.Principal)(nil), owner, port.ListVideosInput{Page: 1, Limit: 10}).
			Return([]domain.Video{published}, int64(1), nil)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/users/"+owner.String()+"/videos", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response video3.V1ListVideosResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Len(t, response.Videos, 1)
		assert.Equal(t, published.ID, response.Videos[0].ID)
		assert.Equal(t, int64(1), response.Total)

		mockService.AssertExpectations(t)
	})

	t.Run("success - owner credential is forwarded to the service", func(t *testing.T) {
		// Arrange
		principal := domain.Principal{UserID: uuid.New(), Username: "alice"}
		token := accessTokenFor(t, principal)
		draft := sampleVideoWithOwner(principal.UserID, "alice", false).Video

		mockService := video.NewMockVideoService()
		mockService.On("ListByOwner", mock.Anything, mock.MatchedBy(func(viewer *domain.Principal) bool {
			return viewer != nil && viewer.UserID == principal.UserID
		}), principal.UserID, port.ListVideosInput{Page: 1, Limit: 10}).
			Return([]domain.Video{draft}, int64(1), nil)

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/users/"+principal.UserID.String()+"/videos", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response video3.V1ListVideosResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Len(t, response.Videos, 1)
		assert.Equal(t, draft.ID, response.Videos[0].ID)

		mockService.AssertExpectations(t)
	})

	t.Run("error - malformed user id", func(t *testing.T) {
		// Arrange
		mockService := video.NewMockVideoService()

		h := newTestRouter(t, mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/users/not-a-uuid/videos", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ListByOwner")
	})
}
