package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var imageExts = map[string]string{
	".jpg":  ".jpg",
	".jpeg": ".jpg",
	".png":  ".png",
	".webp": ".webp",
	".gif":  ".gif",
}

var dataURLExts = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

const maxImageBytes = 5 << 20

// ImageService stores uploaded images under Dir. Stored paths are returned
// as "/uploads/<subdir>/<uuid><ext>", which the router serves statically.
type ImageService struct {
	Dir string
}

func NewImageService(dir string) *ImageService {
	return &ImageService{Dir: dir}
}

func (s *ImageService) write(subdir, ext string, r io.Reader) (string, error) {
	dir := filepath.Join(s.Dir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := uuid.NewString() + ext
	f, err := os.OpenFile(filepath.Join(dir, filename), os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, io.LimitReader(r, maxImageBytes+1))
	if err == nil && n > maxImageBytes {
		err = fmt.Errorf("%w: image larger than %d bytes", ErrInvalidInput, maxImageBytes)
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return "/uploads/" + filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

// SaveUpload stores a multipart image file.
func (s *ImageService) SaveUpload(fh *multipart.FileHeader, subdir string) (string, error) {
	ext, ok := imageExts[strings.ToLower(filepath.Ext(fh.Filename))]
	if !ok {
		return "", fmt.Errorf("%w: unsupported image type %q", ErrInvalidInput, filepath.Ext(fh.Filename))
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()
	return s.write(subdir, ext, src)
}

// IsDataURL reports whether v is an inline base64 image.
func IsDataURL(v string) bool {
	return strings.HasPrefix(v, "data:image/")
}

// SaveBase64Image stores a "data:image/...;base64," payload.
func (s *ImageService) SaveBase64Image(b64 string, subdir string) (string, error) {
	header, payload, ok := strings.Cut(b64, "base64,")
	if !ok {
		return "", fmt.Errorf("%w: not a base64 data url", ErrInvalidInput)
	}
	mime := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";")
	ext, ok := dataURLExts[mime]
	if !ok {
		return "", fmt.Errorf("%w: unsupported image type %q", ErrInvalidInput, mime)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrInvalidInput, err)
	}
	return s.write(subdir, ext, bytes.NewReader(data))
}

// Remove deletes a previously stored image. Unknown paths are ignored.
func (s *ImageService) Remove(stored string) {
	rel, ok := strings.CutPrefix(stored, "/uploads/")
	if !ok || strings.Contains(rel, "..") {
		return
	}
	_ = os.Remove(filepath.Join(s.Dir, filepath.FromSlash(rel)))
}
