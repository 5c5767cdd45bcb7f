package software

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/backend"
)

func init() {
	backend.Register(backend.Software, func(cfg backend.Config) (uidriver.Renderer, error) {
		return newBackend(cfg, uidriver.Transparent), nil
	})
}

// Backend renders into an *image.RGBA framebuffer.
//
// Backend is not safe for concurrent use.
type Backend struct {
	backend.Resources

	fb         *image.RGBA
	scaler     draw.Interpolator
	clearColor uidriver.Color

	scissor    uidriver.Rect
	hasScissor bool
}

var _ uidriver.Renderer = (*Backend)(nil)

// New creates a backend with a width x height framebuffer.
func New(width, height int, opts ...Option) (*Backend, error) {
	o := options{cfg: backend.Config{Width: width, Height: height}}
	for _, opt := range opts {
		opt(&o)
	}
	cfg, err := o.cfg.Normalize()
	if err != nil {
		return nil, err
	}
	return newBackend(cfg, o.clearColor), nil
}

func newBackend(cfg backend.Config, clearColor uidriver.Color) *Backend {
	b := &Backend{
		Resources:  backend.NewResources(cfg),
		fb:         image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		scaler:     draw.NearestNeighbor,
		clearColor: clearColor,
	}
	if cfg.Smooth {
		b.scaler = draw.ApproxBiLinear
	}
	b.Clear()
	return b
}

// Image returns the framebuffer. It stays valid until the next Resize.
func (b *Backend) Image() *image.RGBA {
	return b.fb
}

// Resize replaces the framebuffer with a cleared one of the new size. The
// scissor region is kept.
func (b *Backend) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return uidriver.NewOpError("Resize", "", fmt.Errorf("size %dx%d: %w", width, height, uidriver.ErrInvalidArgument))
	}
	b.fb = image.NewRGBA(image.Rect(0, 0, width, height))
	b.Clear()
	uidriver.Logger().Debug("software: resized", "width", width, "height", height)
	return nil
}

// Clear fills the whole framebuffer with the clear colour, ignoring the
// scissor region.
func (b *Backend) Clear() {
	c := b.clearColor.Premultiplied()
	pix := b.fb.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
}

// SavePNG writes the framebuffer to a PNG file.
func (b *Backend) SavePNG(path string) error {
	// #nosec G304 -- path is chosen by the host application
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, b.fb); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ScreenBounds implements uidriver.Renderer.
func (b *Backend) ScreenBounds() uidriver.Rect {
	return uidriver.RectFromImage(b.fb.Rect)
}

// SetScissorRegion implements uidriver.Renderer.
func (b *Backend) SetScissorRegion(r uidriver.Rect) error {
	if err := backend.CheckScissor(r); err != nil {
		return err
	}
	b.scissor, b.hasScissor = r, true
	return nil
}

// ScissorRegion implements uidriver.Renderer.
func (b *Backend) ScissorRegion() (uidriver.Rect, bool) {
	return b.scissor, b.hasScissor
}

// ClearScissorRegion implements uidriver.Renderer.
func (b *Backend) ClearScissorRegion() {
	b.scissor, b.hasScissor = uidriver.Rect{}, false
}

// clip returns the part of r that may be written: r intersected with the
// scissor region and the framebuffer.
func (b *Backend) clip(r uidriver.Rect) image.Rectangle {
	c := r.Image().Intersect(b.fb.Rect)
	if b.hasScissor {
		c = c.Intersect(b.scissor.Image())
	}
	return c
}
