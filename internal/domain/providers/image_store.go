package providers

import (
	"context"
)

// ImageStore persists uploaded medical images outside the database.
type ImageStore interface {
	// Save writes the image bytes and returns the stored path. The
	// extension hints at the original content type.
	Save(ctx context.Context, data []byte, extension string) (string, error)

	// Read returns the bytes stored at path
	Read(ctx context.Context, path string) ([]byte, error)

	// Delete removes the stored file; missing files are not an error
	Delete(ctx context.Context, path string) error
}
