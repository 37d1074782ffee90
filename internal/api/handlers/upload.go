package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// maxUploadSize bounds the in-memory part of multipart parsing.
const maxUploadSize = 32 << 20

// allowedImageTypes is the upload content-type allowlist, checked
// before the image touches storage or the classifier.
var allowedImageTypes = map[string]bool{
	"image/jpeg":        true,
	"image/png":         true,
	"image/webp":        true,
	"image/dicom":       true,
	"application/dicom": true,
}

// upload is a validated multipart image upload.
type upload struct {
	data      []byte
	extension string
}

// readImageUpload extracts and validates the image file from a
// multipart form. A missing field returns (nil, nil) so callers can
// treat the image as optional.
func readImageUpload(r *http.Request, field string) (*upload, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, fmt.Errorf("invalid multipart form")
	}

	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid image upload")
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("invalid image type. Allowed: JPEG, PNG, WEBP, DICOM")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read image upload")
	}

	extension := strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	if extension == "" {
		extension = "png"
	}

	return &upload{data: data, extension: extension}, nil
}
