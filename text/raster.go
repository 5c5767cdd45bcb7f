package text

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/internal/blend"
)

type maskKey struct {
	id   gtfont.GID
	size int
}

// glyphMask is a rasterized glyph. offset is the position of the mask's
// top-left corner relative to the pen position on the baseline.
type glyphMask struct {
	mask   *image.Alpha
	offset image.Point
}

// glyphMask returns the cached mask for a glyph, rasterizing it on first
// use. Glyphs without outlines (spaces, colour bitmaps) yield an empty mask.
func (s *FontSource) glyphMask(id gtfont.GID, size int) (*glyphMask, error) {
	return s.masks.GetOrCreate(maskKey{id: id, size: size}, func() (*glyphMask, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return nil, ErrClosed
		}

		segs, err := s.outlines.LoadGlyph(&s.buf, sfnt.GlyphIndex(id), fixed.I(size), nil)
		switch {
		case errors.Is(err, sfnt.ErrColoredGlyph), errors.Is(err, sfnt.ErrNotFound):
			segs = nil
		case err != nil:
			return nil, fmt.Errorf("text: load glyph %d: %w", id, err)
		}
		return rasterizeSegments(segs), nil
	})
}

// rasterizeSegments fills glyph outline segments into an alpha mask.
func rasterizeSegments(segs sfnt.Segments) *glyphMask {
	if len(segs) == 0 {
		return &glyphMask{mask: image.NewAlpha(image.Rectangle{})}
	}

	b := segs.Bounds()
	minX, minY := b.Min.X.Floor(), b.Min.Y.Floor()
	w, h := b.Max.X.Ceil()-minX, b.Max.Y.Ceil()-minY
	if w <= 0 || h <= 0 {
		return &glyphMask{mask: image.NewAlpha(image.Rectangle{})}
	}

	ox, oy := float32(minX), float32(minY)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return fixedToFloat(p.X) - ox, fixedToFloat(p.Y) - oy
	}

	z := vector.NewRasterizer(w, h)
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			z.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			z.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return &glyphMask{mask: mask, offset: image.Pt(minX, minY)}
}

// Draw shapes text and draws it into dst with its top-left corner at pos.
// When outlineWidth is positive, an outline of that radius is drawn in the
// outline colour underneath the fill. Only dst's bounds are written, so
// callers clip by passing a sub-image.
func (s *FontSource) Draw(dst *image.RGBA, text string, size int, pos image.Point, fill, outline color.NRGBA, outlineWidth int, spacing float32) error {
	if outlineWidth < 0 {
		return fmt.Errorf("text: outline width %d: %w", outlineWidth, uidriver.ErrInvalidArgument)
	}
	l, err := s.Layout(text, size, spacing)
	if err != nil {
		return err
	}

	if outlineWidth > 0 && outline.A > 0 {
		oc := premultiply(outline)
		for _, off := range outlineOffsets(outlineWidth) {
			if err := s.drawPass(dst, l, pos.Add(off), oc); err != nil {
				return err
			}
		}
	}
	return s.drawPass(dst, l, pos, premultiply(fill))
}

// drawPass draws every glyph of l once in colour c.
func (s *FontSource) drawPass(dst *image.RGBA, l *Layout, pos image.Point, c color.RGBA) error {
	if c.A == 0 {
		return nil
	}
	for i, ln := range l.lines {
		baseline := pos.Y + i*l.metrics.LineHeight + l.metrics.Ascent
		for _, g := range ln.glyphs {
			gm, err := s.glyphMask(g.id, l.size)
			if err != nil {
				return err
			}
			if gm.mask.Rect.Empty() {
				continue
			}
			origin := image.Pt(pos.X+int(math32.Round(g.x)), baseline+int(math32.Round(g.y)))
			r := gm.mask.Rect.Add(origin.Add(gm.offset))
			blend.DrawMask(dst, r, c, gm.mask, image.Point{})
		}
	}
	return nil
}

// outlineOffsets returns every non-zero offset within a disc of radius w.
func outlineOffsets(w int) []image.Point {
	offs := make([]image.Point, 0, (2*w+1)*(2*w+1))
	for dy := -w; dy <= w; dy++ {
		for dx := -w; dx <= w; dx++ {
			if (dx != 0 || dy != 0) && dx*dx+dy*dy <= w*w {
				offs = append(offs, image.Pt(dx, dy))
			}
		}
	}
	return offs
}

func premultiply(c color.NRGBA) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
