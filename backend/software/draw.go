package software

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/backend"
	"github.com/gogpu/uidriver/effect"
	"github.com/gogpu/uidriver/internal/blend"
)

var opaque = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// DrawRectangle implements uidriver.Renderer.
func (b *Backend) DrawRectangle(r uidriver.Rect, c uidriver.Color) error {
	if err := backend.CheckArea("DrawRectangle", r); err != nil {
		return err
	}
	blend.FillRect(b.fb, b.clip(r), c.Premultiplied())
	return nil
}

// DrawTexture implements uidriver.Renderer. The effect runs on the source
// pixels before scaling; the tint is applied last.
func (b *Backend) DrawTexture(effectID uidriver.EffectID, textureID string, dest, source uidriver.Rect, tint uidriver.Color) error {
	const op = "DrawTexture"
	fn, err := b.Effect(op, effectID)
	if err != nil {
		return err
	}
	region, err := b.TextureRegion(op, textureID, source)
	if err != nil {
		return err
	}
	if err := backend.CheckArea(op, dest); err != nil {
		return err
	}

	clip := b.clip(dest)
	if clip.Empty() || tint.A == 0 {
		return nil
	}

	src := effect.Apply(fn, region)
	sp := src.Rect.Min.Add(clip.Min.Sub(dest.Image().Min))
	if dest.W != source.W || dest.H != source.H {
		src, sp = b.scaleInto(clip, dest, src), clip.Min
	}
	blend.DrawTinted(b.fb, clip, src, sp, tint.NRGBA())
	return nil
}

// scaleInto scales src onto dest and returns only the part inside clip,
// so the buffer never grows beyond the visible area.
func (b *Backend) scaleInto(clip image.Rectangle, dest uidriver.Rect, src *image.RGBA) *image.RGBA {
	sr := src.Rect
	sx := float64(dest.W) / float64(sr.Dx())
	sy := float64(dest.H) / float64(sr.Dy())
	m := f64.Aff3{
		sx, 0, float64(dest.X) - float64(sr.Min.X)*sx,
		0, sy, float64(dest.Y) - float64(sr.Min.Y)*sy,
	}
	scaled := image.NewRGBA(clip)
	b.scaler.Transform(scaled, m, src, sr, draw.Src, nil)
	return scaled
}

// DrawText implements uidriver.Renderer. With an effect, the text is drawn
// into a layer that is filtered and then composited.
func (b *Backend) DrawText(effectID uidriver.EffectID, s string, font uidriver.FontID, size int, pos uidriver.Point, fill, outline uidriver.Color, outlineWidth int, spacing float32) error {
	const op = "DrawText"
	fn, err := b.Effect(op, effectID)
	if err != nil {
		return err
	}
	src, err := b.Font(op, font)
	if err != nil {
		return err
	}

	if fn == nil {
		dst := b.fb.SubImage(b.clip(b.ScreenBounds())).(*image.RGBA)
		err := src.Draw(dst, s, size, pos.Image(), fill.NRGBA(), outline.NRGBA(), outlineWidth, spacing)
		return uidriver.NewOpError(op, string(font), err)
	}

	w, h, err := src.Measure(s, size, spacing)
	if err != nil {
		return uidriver.NewOpError(op, string(font), err)
	}
	// Glyph ink can overhang the advance box; leave room around it.
	pad := max(outlineWidth, 0) + size/4 + 1
	box := image.Rect(pos.X, pos.Y, pos.X+w, pos.Y+h).Inset(-pad)
	layer := image.NewRGBA(box)
	if err := src.Draw(layer, s, size, pos.Image(), fill.NRGBA(), outline.NRGBA(), outlineWidth, spacing); err != nil {
		return uidriver.NewOpError(op, string(font), err)
	}

	clip := b.clip(uidriver.RectFromImage(box))
	if clip.Empty() {
		return nil
	}
	filtered := effect.Apply(fn, layer)
	blend.DrawTinted(b.fb, clip, filtered, clip.Min, opaque)
	return nil
}
