package ebitengine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/backend"
	"github.com/gogpu/uidriver/internal/cache"
)

func init() {
	backend.Register(backend.Ebiten, func(cfg backend.Config) (uidriver.Renderer, error) {
		return New(cfg), nil
	})
}

// Cache sizes.
const (
	maxCachedImages = 512
	maxCachedText   = 256
)

// imageKey identifies an uploaded texture region. img is the texture as
// returned by the store, so a reloaded texture gets new entries.
type imageKey struct {
	img    image.Image
	effect uidriver.EffectID
	source uidriver.Rect
}

// textKey identifies an uploaded text layer.
type textKey struct {
	text          string
	font          uidriver.FontID
	effect        uidriver.EffectID
	size          int
	fill, outline uidriver.Color
	outlineWidth  int
	spacing       float32
}

// textLayer is rendered text. pad is the distance from the layer's
// top-left corner to the text position.
type textLayer struct {
	img *ebiten.Image
	pad int
}

// Backend renders onto an *ebiten.Image.
//
// Backend is not safe for concurrent use; call it from Ebitengine's Draw.
type Backend struct {
	backend.Resources

	target *ebiten.Image
	filter ebiten.Filter

	images *cache.Cache[imageKey, *ebiten.Image]
	texts  *cache.Cache[textKey, textLayer]

	scissor    uidriver.Rect
	hasScissor bool
}

var _ uidriver.Renderer = (*Backend)(nil)

// New creates a backend drawing onto an offscreen image of cfg's size
// until SetTarget is called. cfg must be normalized.
func New(cfg backend.Config) *Backend {
	b := &Backend{
		Resources: backend.NewResources(cfg),
		target:    ebiten.NewImage(cfg.Width, cfg.Height),
		filter:    ebiten.FilterNearest,
		images:    cache.New[imageKey, *ebiten.Image](maxCachedImages),
		texts:     cache.New[textKey, textLayer](maxCachedText),
	}
	if cfg.Smooth {
		b.filter = ebiten.FilterLinear
	}
	b.images.OnEvict = func(_ imageKey, img *ebiten.Image) { img.Deallocate() }
	b.texts.OnEvict = func(_ textKey, l textLayer) { l.img.Deallocate() }
	return b
}

// SetTarget sets the image subsequent draws go to. ScreenBounds follows
// the target, so window resizes are picked up on the next frame.
func (b *Backend) SetTarget(target *ebiten.Image) {
	b.target = target
}

// Target returns the current target image.
func (b *Backend) Target() *ebiten.Image {
	return b.target
}

// Purge drops every uploaded image.
func (b *Backend) Purge() {
	uidriver.Logger().Debug("ebitengine: purging caches", "images", b.images.Stats(), "texts", b.texts.Stats())
	b.images.Clear()
	b.texts.Clear()
}

// ScreenBounds implements uidriver.Renderer.
func (b *Backend) ScreenBounds() uidriver.Rect {
	return uidriver.RectFromImage(b.target.Bounds())
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

// clip returns r intersected with the scissor region and the target.
func (b *Backend) clip(r uidriver.Rect) image.Rectangle {
	return clipRect(r.Image(), b.target.Bounds(), b.scissor, b.hasScissor)
}

func clipRect(r, bounds image.Rectangle, scissor uidriver.Rect, hasScissor bool) image.Rectangle {
	r = r.Intersect(bounds)
	if hasScissor {
		r = r.Intersect(scissor.Image())
	}
	return r
}

// clipped returns the sub-image of the target drawable inside clip.
// Sub-images share the target's coordinate system.
func (b *Backend) clipped(clip image.Rectangle) *ebiten.Image {
	return b.target.SubImage(clip).(*ebiten.Image)
}

// DrawRectangle implements uidriver.Renderer.
func (b *Backend) DrawRectangle(r uidriver.Rect, c uidriver.Color) error {
	if err := backend.CheckArea("DrawRectangle", r); err != nil {
		return err
	}
	clip := b.clip(r)
	if clip.Empty() || c.A == 0 {
		return nil
	}
	vector.DrawFilledRect(b.clipped(clip), float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.NRGBA(), false)
	return nil
}
