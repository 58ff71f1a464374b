package staging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/NomanKhan13/focusTube/internal/adapters/staging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStagingArea_StageAndDiscard(t *testing.T) {
	// Arrange
	area, err := staging.NewDiskStagingArea(t.TempDir())
	require.NoError(t, err)

	// Act
	staged, err := area.Stage(strings.NewReader("fake video bytes"), "holiday.mp4", "video/mp4")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(len("fake video bytes")), staged.SizeBytes)
	assert.Equal(t, "holiday.mp4", staged.OriginalName)
	assert.Equal(t, ".mp4", filepath.Ext(staged.Path))

	content, err := os.ReadFile(staged.Path)
	require.NoError(t, err)
	assert.Equal(t, "fake video bytes", string(content))

	require.NoError(t, area.Discard(staged))
	_, statErr := os.Stat(staged.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDiskStagingArea_DiscardTwice_NoError(t *testing.T) {
	area, err := staging.NewDiskStagingArea(t.TempDir())
	require.NoError(t, err)

	staged, err := area.Stage(strings.NewReader("x"), "a.jpg", "image/jpeg")
	require.NoError(t, err)

	assert.NoError(t, area.Discard(staged))
	assert.NoError(t, area.Discard(staged))
	assert.NoError(t, area.Discard(nil))
}

func TestDiskStagingArea_UniqueNamesForSameOriginal(t *testing.T) {
	area, err := staging.NewDiskStagingArea(t.TempDir())
	require.NoError(t, err)

	first, err := area.Stage(strings.NewReader("one"), "same.mp4", "video/mp4")
	require.NoError(t, err)
	second, err := area.Stage(strings.NewReader("two"), "same.mp4", "video/mp4")
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
}

func TestDiskStagingArea_Sweep_RemovesOnlyOldFiles(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	area, err := staging.NewDiskStagingArea(dir)
	require.NoError(t, err)

	old, err := area.Stage(strings.NewReader("old"), "old.mp4", "video/mp4")
	require.NoError(t, err)
	fresh, err := area.Stage(strings.NewReader("fresh"), "fresh.mp4", "video/mp4")
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(old.Path, past, past))

	// Act
	removed, err := area.Sweep(time.Now().Add(-time.Hour))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	_, statErr := os.Stat(old.Path)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(fresh.Path)
	assert.NoError(t, statErr)
}
