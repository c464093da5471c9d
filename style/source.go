package style

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Source formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Errors
var (
	ErrEmptyImage = errors.New("style: source image has no pixels")
	ErrNoRules    = errors.New("style: no rules")
)

// Source is a decoded source image. A Source always has positive dimensions,
// so holding one means the image is ready to render.
type Source struct {
	// Name identifies the image, usually its path or URL. Changing it
	// invalidates cached renders.
	Name string

	// Image holds the decoded pixels.
	Image image.Image
}

// NewSource wraps a decoded image.
func NewSource(name string, img image.Image) (*Source, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyImage, name)
	}
	return &Source{Name: name, Image: img}, nil
}

// DecodeSource decodes an image in any registered format (PNG, JPEG, GIF,
// BMP, WebP).
func DecodeSource(name string, r io.Reader) (*Source, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("style: decode %s: %w", name, err)
	}
	logger().Debug("style: decoded source",
		"name", name,
		"format", format,
		"size", img.Bounds().Size())
	return NewSource(name, img)
}

// LoadSource opens and decodes the image file at path.
func LoadSource(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeSource(path, f)
}

// Size returns the image dimensions.
func (s *Source) Size() image.Point {
	return s.Image.Bounds().Size()
}
