package data

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cinetalk/internal/biz"
	"cinetalk/internal/conf"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

const (
	imageDir            = "images"
	defaultMaxImageSize = 5 << 20
)

var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type mediaStore struct {
	root    string
	maxSize int64
	log     *log.Helper
}

// NewMediaStore creates an image store rooted at the configured media directory
func NewMediaStore(c *conf.Media, logger log.Logger) biz.MediaStore {
	maxSize := c.MaxImageSize
	if maxSize <= 0 {
		maxSize = defaultMaxImageSize
	}
	return &mediaStore{
		root:    c.Root,
		maxSize: maxSize,
		log:     log.NewHelper(logger),
	}
}

// Save writes the upload under images/ with a fresh name and returns the
// path relative to the media root.
func (s *mediaStore) Save(ctx context.Context, upload *biz.Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !allowedImageExt[ext] {
		return "", errors.BadRequest(biz.ReasonInvalidImage, fmt.Sprintf("unsupported image type %q", ext))
	}
	if upload.Size > s.maxSize {
		return "", errors.BadRequest(biz.ReasonInvalidImage, "image is too large")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate image name: %w", err)
	}
	rel := filepath.ToSlash(filepath.Join(imageDir, id.String()+ext))

	dir := filepath.Join(s.root, imageDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media dir: %w", err)
	}

	f, err := os.Create(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil {
		return "", fmt.Errorf("failed to create image: %w", err)
	}
	defer f.Close()

	// Read one byte past the limit to catch uploads with a lying size.
	n, err := io.Copy(f, io.LimitReader(upload.Content, s.maxSize+1))
	if err == nil && n > s.maxSize {
		err = errors.BadRequest(biz.ReasonInvalidImage, "image is too large")
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}

	s.log.WithContext(ctx).Debugf("stored image %s (%d bytes)", rel, n)
	return rel, nil
}

func (s *mediaStore) Remove(ctx context.Context, path string) error {
	if path == "" || path == biz.DefaultProfilePicture {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(path)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove image: %w", err)
	}
	return nil
}
