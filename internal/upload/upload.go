// Package upload stores logo images on disk under generated filenames.
package upload

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize is the upload size cap (10 MiB)
const MaxFileSize = 10 << 20

var imageMIME = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// SaveLogo validates and stores an uploaded logo, returning the generated
// filename. The error messages for rejected uploads are matched by the
// server's error translation, so their wording is part of the contract.
func SaveLogo(dir string, fh *multipart.FileHeader) (string, error) {
	mediaType, _, err := mime.ParseMediaType(fh.Header.Get("Content-Type"))
	if err != nil || !imageMIME[mediaType] {
		return "", fmt.Errorf("only image files (jpeg, png, gif, webp) are allowed")
	}

	if fh.Size > MaxFileSize {
		return "", fmt.Errorf("file size exceeds the %d MiB limit", MaxFileSize>>20)
	}

	ext := filepath.Ext(fh.Filename)
	if ext == "" {
		ext = ".bin"
	}
	filename := uuid.NewString() + ext

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return filename, nil
}

// SafeFilename reports whether a requested filename may be served:
// path-traversal sequences and absolute paths are rejected.
func SafeFilename(name string) bool {
	return name != "" && !strings.Contains(name, "..") && !filepath.IsAbs(name)
}

// Resolve returns the on-disk path for a stored filename, or false when
// the file is absent or not a regular file.
func Resolve(dir, name string) (string, bool) {
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return path, true
}
