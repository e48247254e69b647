package blob_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"complainthub/backend/internal/blob"

	"github.com/stretchr/testify/assert"
)

// TestDiskStore_SaveRemoveRoundTrip verifies a blob can be stored, read
// back byte for byte, and removed for good.
func TestDiskStore_SaveRemoveRoundTrip(t *testing.T) {
	// Arrange
	root := t.TempDir()
	store, err := blob.NewDiskStore(root)
	assert.NoError(t, err)

	// Act
	path, size, err := store.Save("Scan Of Receipt.PDF", strings.NewReader("pdf bytes"))

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(len("pdf bytes")), size)
	assert.True(t, strings.HasPrefix(path, "attachments"+string(os.PathSeparator)))
	assert.True(t, strings.HasSuffix(path, ".pdf"), "extension is kept, lowercased: %s", path)
	assert.NotContains(t, path, "Scan", "user-supplied names never reach the filesystem")

	stored, err := os.ReadFile(filepath.Join(root, path))
	assert.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(stored))

	assert.NoError(t, store.Remove(path))
	_, err = os.Stat(filepath.Join(root, path))
	assert.True(t, os.IsNotExist(err))
}

// TestDiskStore_UniquePaths verifies two saves of the same file name do
// not collide.
func TestDiskStore_UniquePaths(t *testing.T) {
	store, err := blob.NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	first, _, err := store.Save("photo.jpg", strings.NewReader("one"))
	assert.NoError(t, err)
	second, _, err := store.Save("photo.jpg", strings.NewReader("two"))
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// TestDiskStore_RemoveMissingIsNoop verifies removing an already-gone
// blob does not fail, since deletion runs after the records are gone.
func TestDiskStore_RemoveMissingIsNoop(t *testing.T) {
	store, err := blob.NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, store.Remove("attachments/no-such-file.png"))
}
