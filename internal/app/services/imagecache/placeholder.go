package imagecache

import (
	"bytes"
	_ "embed"
	"image"
	"image/png"
	"os"
	"sync"
	"vollmed-client/internal/pkg/exceptions"
)

//go:embed assets/placeholder.png
var placeholderPNG []byte

var (
	placeholderOnce  sync.Once
	placeholderImage image.Image
)

// DefaultPlaceholder is the bundled avatar shown when a specialist image cannot be loaded.
func DefaultPlaceholder() image.Image {
	placeholderOnce.Do(func() {
		img, err := png.Decode(bytes.NewReader(placeholderPNG))
		if err != nil {
			panic("imagecache: bundled placeholder is not a valid PNG: " + err.Error())
		}
		placeholderImage = img
	})
	return placeholderImage
}

// LoadPlaceholder reads a PNG, JPEG or GIF from path. An empty path selects the bundled image.
func LoadPlaceholder(path string) (image.Image, error) {
	if path == "" {
		return DefaultPlaceholder(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, exceptions.ErrDecodeImage(err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, exceptions.ErrDecodeImage(err)
	}
	return img, nil
}

// PlaceholderPNG returns the encoded bundled placeholder.
func PlaceholderPNG() []byte {
	return placeholderPNG
}
