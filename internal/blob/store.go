package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"ayushyaa-be/internal/logger"
	"ayushyaa-be/internal/utils"

	"github.com/nfnt/resize"
	"go.uber.org/zap"
)

const (
	MaxUploadSize = 5 << 20
	MaxImageWidth = 1200
	jpegQuality   = 85
)

var (
	ErrNotImage     = errors.New("file is not an image")
	ErrTooLarge     = errors.New("image exceeds 5MB")
	ErrInvalidImage = errors.New("image could not be decoded")
)

// Upload is a binary object handed over by the admin form.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Store keeps product images and hands back a stable retrieval URL.
type Store interface {
	Upload(ctx context.Context, u Upload) (string, error)
}

// FileStore writes normalised JPEGs beneath Root and serves them from BaseURL.
type FileStore struct {
	root    string
	baseURL string
	now     func() time.Time
	encode  func(io.Writer, image.Image, *jpeg.Options) error
}

func NewFileStore(root, baseURL string) *FileStore {
	return &FileStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
		encode:  jpeg.Encode,
	}
}

func (s *FileStore) Upload(ctx context.Context, u Upload) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("filename", u.Filename),
		zap.String("content_type", u.ContentType),
	)

	if !strings.HasPrefix(u.ContentType, "image/") {
		return "", ErrNotImage
	}
	if u.Size > MaxUploadSize {
		return "", ErrTooLarge
	}

	raw, err := io.ReadAll(io.LimitReader(u.Body, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(raw) > MaxUploadSize {
		return "", ErrTooLarge
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Warn("image decode failed", zap.Error(err))
		return "", ErrInvalidImage
	}
	if img.Bounds().Dx() > MaxImageWidth {
		img = resize.Resize(MaxImageWidth, 0, img, resize.Lanczos3)
	}

	name := s.objectName(u.Filename)
	dst := filepath.Join(s.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create blob dir: %w", err)
	}

	if err := s.write(dst, img); err != nil {
		log.Error("image write failed", zap.String("path", dst), zap.Error(err))
		return "", err
	}

	url := s.baseURL + "/" + name
	log.Info("image stored", zap.String("url", url))
	return url, nil
}

// write encodes img to dst. A failed encode or close leaves no file behind.
func (s *FileStore) write(dst string, img image.Image) error {
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create blob: %w", err)
	}

	encErr := s.encode(out, img, &jpeg.Options{Quality: jpegQuality})
	closeErr := out.Close()
	if err := errors.Join(encErr, closeErr); err != nil {
		if rmErr := os.Remove(dst); rmErr != nil {
			err = errors.Join(err, rmErr)
		}
		return fmt.Errorf("write blob: %w", err)
	}
	return nil
}

// objectName follows products/<unix-millis>_<name>.jpg.
func (s *FileStore) objectName(filename string) string {
	base := strings.TrimSuffix(path.Base(filepath.ToSlash(filename)), path.Ext(filename))
	slug := utils.Slugify(base)
	if slug == "" {
		slug = "image"
	}
	return fmt.Sprintf("products/%d_%s.jpg", s.now().UnixMilli(), slug)
}
