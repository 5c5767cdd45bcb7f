package backend

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/effect"
	"github.com/gogpu/uidriver/text"
	"github.com/gogpu/uidriver/texture"
)

// Resources resolves the ids named in draw calls and implements the
// Renderer operations that only read resources. Backends embed it so that
// measurement and pixel queries behave identically everywhere.
type Resources struct {
	Textures texture.Store
	Fonts    *text.Registry
	Effects  *effect.Registry
	Metric   uidriver.Metric
}

// NewResources takes the stores of a normalized Config.
func NewResources(cfg Config) Resources {
	return Resources{
		Textures: cfg.Textures,
		Fonts:    cfg.Fonts,
		Effects:  cfg.Effects,
		Metric:   cfg.Metric,
	}
}

// Texture resolves a texture id for op.
func (r *Resources) Texture(op, id string) (image.Image, error) {
	img, err := r.Textures.Texture(id)
	return img, uidriver.NewOpError(op, id, err)
}

// Font resolves a font id for op.
func (r *Resources) Font(op string, id uidriver.FontID) (*text.FontSource, error) {
	src, err := r.Fonts.Lookup(id)
	return src, uidriver.NewOpError(op, string(id), err)
}

// Effect resolves an effect id for op. The default effect is a nil Func.
func (r *Resources) Effect(op string, id uidriver.EffectID) (effect.Func, error) {
	fn, err := r.Effects.Lookup(id)
	return fn, uidriver.NewOpError(op, string(id), err)
}

// CheckArea fails with ErrInvalidArgument unless r has positive width and
// height.
func CheckArea(op string, r uidriver.Rect) error {
	if r.Empty() {
		return uidriver.NewOpError(op, "", fmt.Errorf("rect %v has no area: %w", r, uidriver.ErrInvalidArgument))
	}
	return nil
}

// CheckScissor fails with ErrInvalidArgument for negative sizes. Zero-size
// regions are valid and clip everything.
func CheckScissor(r uidriver.Rect) error {
	if r.W < 0 || r.H < 0 {
		return uidriver.NewOpError("SetScissorRegion", "", fmt.Errorf("region %v: %w", r, uidriver.ErrInvalidArgument))
	}
	return nil
}

// MeasureText implements uidriver.Renderer.
func (r *Resources) MeasureText(s string, font uidriver.FontID, size int, spacing float32) (uidriver.Point, error) {
	src, err := r.Font("MeasureText", font)
	if err != nil {
		return uidriver.Point{}, err
	}
	w, h, err := src.Measure(s, size, spacing)
	if err != nil {
		return uidriver.Point{}, uidriver.NewOpError("MeasureText", string(font), err)
	}
	return uidriver.Pt(w, h), nil
}

// TextLineHeight implements uidriver.Renderer.
func (r *Resources) TextLineHeight(font uidriver.FontID, size int) (int, error) {
	src, err := r.Font("TextLineHeight", font)
	if err != nil {
		return 0, err
	}
	m, err := src.Metrics(size)
	if err != nil {
		return 0, uidriver.NewOpError("TextLineHeight", string(font), err)
	}
	return m.LineHeight, nil
}

// PixelFromTexture implements uidriver.Renderer.
func (r *Resources) PixelFromTexture(id string, pos uidriver.Point) (uidriver.Color, error) {
	img, err := r.Texture("PixelFromTexture", id)
	if err != nil {
		return uidriver.Color{}, err
	}
	c, err := uidriver.PixelAt(img, pos)
	return c, uidriver.NewOpError("PixelFromTexture", id, err)
}

// FindPixelOffsetInTexture implements uidriver.Renderer.
func (r *Resources) FindPixelOffsetInTexture(id string, source uidriver.Rect, c uidriver.Color, returnNearest bool) (uidriver.Point, bool, error) {
	img, err := r.Texture("FindPixelOffsetInTexture", id)
	if err != nil {
		return uidriver.Point{}, false, err
	}
	off, ok, err := uidriver.FindPixelOffset(img, source, c, returnNearest, r.Metric)
	return off, ok, uidriver.NewOpError("FindPixelOffsetInTexture", id, err)
}

// TextureRegion resolves id and returns the validated source region of it,
// rebased so that its bounds are source's rectangle in texture coordinates.
func (r *Resources) TextureRegion(op, id string, source uidriver.Rect) (image.Image, error) {
	img, err := r.Texture(op, id)
	if err != nil {
		return nil, err
	}
	return SourceRegion(op, id, img, source)
}

// SourceRegion validates source against an already resolved texture and
// returns that part of it. Callers that key caches on img use it so the
// region always comes from the same image as the key.
func SourceRegion(op, id string, img image.Image, source uidriver.Rect) (image.Image, error) {
	if err := uidriver.CheckSource(img, source); err != nil {
		return nil, uidriver.NewOpError(op, id, err)
	}
	return subImage(img, source.Image().Add(img.Bounds().Min)), nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// subImage returns the part of img inside r without copying when img
// supports it.
func subImage(img image.Image, r image.Rectangle) image.Image {
	if s, ok := img.(subImager); ok {
		return s.SubImage(r)
	}
	dst := image.NewNRGBA(r)
	draw.Copy(dst, r.Min, img, r, draw.Src, nil)
	return dst
}
