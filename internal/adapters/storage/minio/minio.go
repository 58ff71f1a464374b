package minio

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"

	"github.com/NomanKhan13/focusTube/internal/config"
	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is a media store adapter backed by a MinIO (S3-compatible) bucket
type Adapter struct {
	client *minio.Client
	config config.MediaConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter. The bucket is created when missing.
func NewAdapter(ctx context.Context, cfg config.MediaConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Upload pushes a locally staged file into the bucket under a fresh unique
// key and reports the stored reference. For videos the duration is probed
// from the local file before the push; a failed probe is not fatal.
func (a *Adapter) Upload(ctx context.Context, localPath string, kind domain.MediaKind) (*domain.MediaObject, error) {
	ext := filepath.Ext(localPath)
	key := fmt.Sprintf("%s/%s%s", kind, uuid.New().String(), ext)

	var duration float64
	if kind == domain.MediaKindVideo {
		probed, err := probeMP4Duration(localPath)
		if err != nil {
			a.logger.Warn("failed to probe video duration", "path", localPath, "error", err)
		} else {
			duration = probed
		}
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := a.client.FPutObject(ctx, a.config.BucketName, key, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s object: %w", kind, err)
	}

	return &domain.MediaObject{Ref: key, DurationSeconds: duration}, nil
}

// Delete removes a previously stored asset
func (a *Adapter) Delete(ctx context.Context, ref string, kind domain.MediaKind) error {
	if err := a.client.RemoveObject(ctx, a.config.BucketName, ref, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s object %s: %w", kind, ref, err)
	}
	return nil
}
