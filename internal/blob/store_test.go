package blob

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 159, G: 201, B: 141, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestStore(t *testing.T) (*FileStore, string) {
	root := t.TempDir()
	s := NewFileStore(root, "https://cdn.example.com/uploads/")
	s.now = func() time.Time { return time.UnixMilli(1700000000123) }
	return s, root
}

func TestFileStore_Upload(t *testing.T) {
	s, root := newTestStore(t)
	data := pngBytes(t, 2000, 20)

	url, err := s.Upload(context.Background(), Upload{
		Filename:    "Ragi Laddu.PNG",
		ContentType: "image/png",
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/products/1700000000123_ragi-laddu.jpg", url)

	f, err := os.Open(filepath.Join(root, "products", "1700000000123_ragi-laddu.jpg"))
	require.NoError(t, err)
	defer f.Close()

	img, err := jpeg.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, MaxImageWidth, img.Bounds().Dx())
}

func TestFileStore_FailedEncodeLeavesNoFile(t *testing.T) {
	s, root := newTestStore(t)
	s.encode = func(w io.Writer, img image.Image, o *jpeg.Options) error {
		if _, err := w.Write([]byte{0xff, 0xd8}); err != nil {
			return err
		}
		return errors.New("encoder exploded")
	}
	data := pngBytes(t, 40, 40)

	url, err := s.Upload(context.Background(), Upload{
		Filename:    "half.png",
		ContentType: "image/png",
		Body:        bytes.NewReader(data),
	})
	assert.ErrorContains(t, err, "encoder exploded")
	assert.Empty(t, url)

	entries, err := os.ReadDir(filepath.Join(root, "products"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStore_KeepsSmallImages(t *testing.T) {
	s, root := newTestStore(t)
	data := pngBytes(t, 300, 200)

	_, err := s.Upload(context.Background(), Upload{
		Filename:    "soap.png",
		ContentType: "image/png",
		Body:        bytes.NewReader(data),
	})
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(root, "products", "1700000000123_soap.jpg"))
	require.NoError(t, err)
	defer f.Close()

	cfg, err := jpeg.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestFileStore_Rejects(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("NotImage", func(t *testing.T) {
		_, err := s.Upload(ctx, Upload{Filename: "x.pdf", ContentType: "application/pdf", Body: strings.NewReader("%PDF")})
		assert.ErrorIs(t, err, ErrNotImage)
	})

	t.Run("DeclaredTooLarge", func(t *testing.T) {
		_, err := s.Upload(ctx, Upload{Filename: "x.png", ContentType: "image/png", Size: MaxUploadSize + 1, Body: strings.NewReader("")})
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("ActuallyTooLarge", func(t *testing.T) {
		body := bytes.NewReader(make([]byte, MaxUploadSize+10))
		_, err := s.Upload(ctx, Upload{Filename: "x.png", ContentType: "image/png", Body: body})
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := s.Upload(ctx, Upload{Filename: "x.png", ContentType: "image/png", Body: strings.NewReader("not really a png")})
		assert.ErrorIs(t, err, ErrInvalidImage)
	})
}

func TestFileStore_ObjectName(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, "products/1700000000123_image.jpg", s.objectName("***.png"))
	assert.Equal(t, "products/1700000000123_oil.jpg", s.objectName("dir/oil.jpeg"))
}
