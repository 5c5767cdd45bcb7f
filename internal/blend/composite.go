package blend

import (
	"image"
	"image/color"
)

// SourceOver composites a premultiplied source pixel over a premultiplied
// destination pixel.
// Formula: S + D * (1 - Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := inv255(sa)
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// Tint multiplies a premultiplied texel by a straight-alpha tint.
// Colour channels scale by the tint channel and by the tint alpha so the
// result stays premultiplied.
func Tint(r, g, b, a byte, tint color.NRGBA) (byte, byte, byte, byte) {
	return mulDiv255(mulDiv255(r, tint.R), tint.A),
		mulDiv255(mulDiv255(g, tint.G), tint.A),
		mulDiv255(mulDiv255(b, tint.B), tint.A),
		mulDiv255(a, tint.A)
}

// FillRect composites the premultiplied colour c over every pixel of dst
// inside r. r is clipped to dst's bounds.
func FillRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() || c.A == 0 {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		row := dst.Pix[i : i+4*r.Dx() : i+4*r.Dx()]
		for j := 0; j < len(row); j += 4 {
			if c.A == 255 {
				row[j], row[j+1], row[j+2], row[j+3] = c.R, c.G, c.B, 255
				continue
			}
			row[j], row[j+1], row[j+2], row[j+3] = SourceOver(c.R, c.G, c.B, c.A, row[j], row[j+1], row[j+2], row[j+3])
		}
	}
}

// DrawTinted composites src, tinted, over dst inside r. The source pixel
// for dst point p is src at p - r.Min + sp. r is clipped to dst's bounds;
// the caller guarantees the matching source area is inside src.
func DrawTinted(dst *image.RGBA, r image.Rectangle, src *image.RGBA, sp image.Point, tint color.NRGBA) {
	clipped := r.Intersect(dst.Bounds())
	if clipped.Empty() || tint.A == 0 {
		return
	}
	sp = sp.Add(clipped.Min.Sub(r.Min))
	identity := tint == color.NRGBA{255, 255, 255, 255}

	for y := 0; y < clipped.Dy(); y++ {
		di := dst.PixOffset(clipped.Min.X, clipped.Min.Y+y)
		si := src.PixOffset(sp.X, sp.Y+y)
		for x := 0; x < clipped.Dx(); x++ {
			d := dst.Pix[di+4*x : di+4*x+4 : di+4*x+4]
			s := src.Pix[si+4*x : si+4*x+4 : si+4*x+4]
			sr, sg, sb, sa := s[0], s[1], s[2], s[3]
			if !identity {
				sr, sg, sb, sa = Tint(sr, sg, sb, sa, tint)
			}
			if sa == 0 {
				continue
			}
			d[0], d[1], d[2], d[3] = SourceOver(sr, sg, sb, sa, d[0], d[1], d[2], d[3])
		}
	}
}

// DrawMask composites the premultiplied colour c over dst inside r, with
// per-pixel coverage taken from mask at p - r.Min + mp. Used for glyphs.
func DrawMask(dst *image.RGBA, r image.Rectangle, c color.RGBA, mask *image.Alpha, mp image.Point) {
	clipped := r.Intersect(dst.Bounds())
	if clipped.Empty() || c.A == 0 {
		return
	}
	mp = mp.Add(clipped.Min.Sub(r.Min))

	for y := 0; y < clipped.Dy(); y++ {
		di := dst.PixOffset(clipped.Min.X, clipped.Min.Y+y)
		for x := 0; x < clipped.Dx(); x++ {
			m := mask.AlphaAt(mp.X+x, mp.Y+y).A
			if m == 0 {
				continue
			}
			d := dst.Pix[di+4*x : di+4*x+4 : di+4*x+4]
			d[0], d[1], d[2], d[3] = SourceOver(
				mulDiv255(c.R, m), mulDiv255(c.G, m), mulDiv255(c.B, m), mulDiv255(c.A, m),
				d[0], d[1], d[2], d[3])
		}
	}
}
