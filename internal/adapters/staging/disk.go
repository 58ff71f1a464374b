package staging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
)

// DiskStagingArea stages uploads on the local filesystem. Every staged file
// gets a uuid-prefixed name, so concurrent requests sharing the directory
// never collide.
type DiskStagingArea struct {
	dir string
}

// NewDiskStagingArea creates the staging directory if needed
func NewDiskStagingArea(dir string) (*DiskStagingArea, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create staging dir %s: %w", dir, err)
	}
	return &DiskStagingArea{dir: dir}, nil
}

// Stage copies r into a uniquely named file in the staging directory. The
// original filename only contributes its extension; the rest is discarded.
func (d *DiskStagingArea) Stage(r io.Reader, originalName, contentType string) (*domain.StagedFile, error) {
	name := uuid.New().String() + filepath.Ext(originalName)
	path := filepath.Join(d.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create staged file: %w", err)
	}

	written, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}

	return &domain.StagedFile{
		Path:         path,
		OriginalName: originalName,
		ContentType:  contentType,
		SizeBytes:    written,
	}, nil
}

// Discard removes a staged file. Discarding twice is not an error.
func (d *DiskStagingArea) Discard(f *domain.StagedFile) error {
	if f == nil {
		return nil
	}
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove staged file %s: %w", f.Path, err)
	}
	return nil
}

// Sweep removes staged files last modified before the cutoff and reports how
// many were removed
func (d *DiskStagingArea) Sweep(olderThan time.Time) (int, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read staging dir: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(olderThan) {
			if err := os.Remove(filepath.Join(d.dir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}

var _ port.StagingArea = (*DiskStagingArea)(nil)
