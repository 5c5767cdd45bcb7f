package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned for files that are not a decodable image.
var ErrUnsupportedFormat = errors.New("texture: unsupported image format")

type decodeFunc func(r *bytes.Reader) (image.Image, error)

// decoders maps a sniffed file extension to its decoder.
var decoders = map[string]decodeFunc{
	"png":  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
	"jpg":  func(r *bytes.Reader) (image.Image, error) { return jpeg.Decode(r) },
	"gif":  func(r *bytes.Reader) (image.Image, error) { return gif.Decode(r) },
	"bmp":  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
	"webp": func(r *bytes.Reader) (image.Image, error) { return webp.Decode(r) },
	"tif":  func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
}

// Decode sniffs the format of data from its content, not its file name, and
// decodes it into a straight-alpha image with a (0,0) origin.
func Decode(data []byte) (*image.NRGBA, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("texture: sniff: %w", err)
	}
	dec, ok := decoders[kind.Extension]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, kind.Extension)
	}

	img, err := dec(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", kind.Extension, err)
	}
	return ToNRGBA(img), nil
}

// ToNRGBA returns img as an *image.NRGBA whose bounds start at (0,0).
// An NRGBA already at the origin is returned as is.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
	return dst
}
