package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/detakmedis/backend/internal/domain/providers"
)

// LocalStore implements ImageStore on the local filesystem. Files are
// written under a single directory with random names so uploads can
// never collide or traverse outside the root.
type LocalStore struct {
	root string
}

// NewLocalStore creates the storage directory if needed and returns a
// store rooted there.
func NewLocalStore(root string) (providers.ImageStore, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// Save writes the image bytes under a fresh UUID name and returns the
// stored path.
func (s *LocalStore) Save(ctx context.Context, data []byte, extension string) (string, error) {
	ext := strings.TrimPrefix(extension, ".")
	name := uuid.New().String()
	if ext != "" {
		name = name + "." + ext
	}

	path := filepath.Join(s.root, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}

// Read returns the bytes stored at path. Paths outside the storage root
// are rejected.
func (s *LocalStore) Read(ctx context.Context, path string) ([]byte, error) {
	if err := s.verify(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return data, nil
}

// Delete removes the stored file; a missing file is not an error.
func (s *LocalStore) Delete(ctx context.Context, path string) error {
	if err := s.verify(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

func (s *LocalStore) verify(path string) error {
	absRoot, err := filepath.Abs(s.root)
	if err != nil {
		return err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if absPath != absRoot && !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
		return fmt.Errorf("path %s is outside the storage root", path)
	}
	return nil
}
