package ebitengine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/backend"
	"github.com/gogpu/uidriver/effect"
)

// DrawTexture implements uidriver.Renderer. The effect runs on the CPU
// when the region is first uploaded; scaling and tint run on the GPU.
func (b *Backend) DrawTexture(effectID uidriver.EffectID, textureID string, dest, source uidriver.Rect, tint uidriver.Color) error {
	const op = "DrawTexture"
	fn, err := b.Effect(op, effectID)
	if err != nil {
		return err
	}
	img, err := b.Texture(op, textureID)
	if err != nil {
		return err
	}
	region, err := backend.SourceRegion(op, textureID, img, source)
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

	key := imageKey{img: img, effect: effectID, source: source}
	uploaded, err := b.images.GetOrCreate(key, func() (*ebiten.Image, error) {
		return ebiten.NewImageFromImage(effect.Apply(fn, region)), nil
	})
	if err != nil {
		return uidriver.NewOpError(op, textureID, err)
	}

	opts := &ebiten.DrawImageOptions{Filter: b.filter}
	opts.GeoM = placement(dest, source.W, source.H)
	opts.ColorScale.ScaleWithColor(tint.NRGBA())
	b.clipped(clip).DrawImage(uploaded, opts)
	return nil
}

// placement maps a w x h image at the origin onto dest.
func placement(dest uidriver.Rect, w, h int) ebiten.GeoM {
	var g ebiten.GeoM
	if dest.W != w || dest.H != h {
		g.Scale(float64(dest.W)/float64(w), float64(dest.H)/float64(h))
	}
	g.Translate(float64(dest.X), float64(dest.Y))
	return g
}

// DrawText implements uidriver.Renderer.
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

	key := textKey{
		text: s, font: font, effect: effectID, size: size,
		fill: fill, outline: outline, outlineWidth: outlineWidth, spacing: spacing,
	}
	layer, err := b.texts.GetOrCreate(key, func() (textLayer, error) {
		w, h, err := src.Measure(s, size, spacing)
		if err != nil {
			return textLayer{}, err
		}
		// Glyph ink can overhang the advance box; leave room around it.
		pad := max(outlineWidth, 0) + size/4 + 1
		rgba := image.NewRGBA(image.Rect(0, 0, w+2*pad, h+2*pad))
		if err := src.Draw(rgba, s, size, image.Pt(pad, pad), fill.NRGBA(), outline.NRGBA(), outlineWidth, spacing); err != nil {
			return textLayer{}, err
		}
		if fn != nil {
			rgba = effect.Apply(fn, rgba)
		}
		return textLayer{img: ebiten.NewImageFromImage(rgba), pad: pad}, nil
	})
	if err != nil {
		return uidriver.NewOpError(op, string(font), err)
	}

	bounds := layer.img.Bounds()
	box := uidriver.NewRect(pos.X-layer.pad, pos.Y-layer.pad, bounds.Dx(), bounds.Dy())
	clip := b.clip(box)
	if clip.Empty() {
		return nil
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(box.X), float64(box.Y))
	b.clipped(clip).DrawImage(layer.img, opts)
	return nil
}
