// Package blob stores attachment files outside the database. The disk
// implementation mirrors a public-readable uploads directory: files are
// renamed to a uuid (keeping the original extension) so user-supplied
// names never touch the filesystem.
package blob

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store is the blob store the lifecycle manager writes attachments to.
type Store interface {
	// Save writes the content and returns the stored relative path and
	// byte size. The blob must be durable before the caller commits the
	// attachment record.
	Save(originalName string, content io.Reader) (path string, size int64, err error)
	// Remove deletes a stored blob. Removing a missing blob is not an
	// error.
	Remove(path string) error
}

// DiskStore keeps blobs under Root, e.g. uploads/attachments/<uuid>.pdf.
type DiskStore struct {
	Root string
}

// NewDiskStore creates the root directory if needed.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(filepath.Join(root, "attachments"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{Root: root}, nil
}

func (d *DiskStore) Save(originalName string, content io.Reader) (string, int64, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	rel := filepath.Join("attachments", uuid.New().String()+ext)

	f, err := os.Create(filepath.Join(d.Root, rel))
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	size, err := io.Copy(f, content)
	if err != nil {
		os.Remove(f.Name())
		return "", 0, err
	}
	return rel, size, nil
}

func (d *DiskStore) Remove(path string) error {
	err := os.Remove(filepath.Join(d.Root, path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
