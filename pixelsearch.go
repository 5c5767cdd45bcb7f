package uidriver

import (
	"fmt"
	"image"
	"math"
)

// Metric is a colour distance used by nearest-colour search. Every metric
// is zero for identical colours and grows monotonically with each channel
// difference it considers.
type Metric int

const (
	// MetricManhattan sums the absolute differences of R, G, B and A.
	// Alpha is included so a transparent texel never ties with an opaque
	// one of the same hue. This is the default.
	MetricManhattan Metric = iota

	// MetricEuclideanRGB is the squared Euclidean distance over R, G and
	// B. Alpha is ignored.
	MetricEuclideanRGB
)

// String returns the configuration name of the metric.
func (m Metric) String() string {
	switch m {
	case MetricManhattan:
		return "manhattan"
	case MetricEuclideanRGB:
		return "euclidean-rgb"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric parses a metric name as produced by String.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "", "manhattan":
		return MetricManhattan, nil
	case "euclidean-rgb":
		return MetricEuclideanRGB, nil
	}
	return 0, fmt.Errorf("uidriver: metric %q: %w", s, ErrInvalidArgument)
}

// Distance returns the distance between a and b under m.
func (m Metric) Distance(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	if m == MetricEuclideanRGB {
		return dr*dr + dg*dg + db*db
	}
	da := int(a.A) - int(b.A)
	return abs(dr) + abs(dg) + abs(db) + abs(da)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// textureRect returns the bounds of img rebased to a (0,0) origin.
func textureRect(img image.Image) Rect {
	b := img.Bounds()
	return Rect{W: b.Dx(), H: b.Dy()}
}

// CheckSource reports ErrInvalidArgument unless source is non-empty and
// lies entirely within img. The same policy applies to every texture read,
// so a backend never clamps silently.
func CheckSource(img image.Image, source Rect) error {
	if source.Empty() {
		return fmt.Errorf("source %v has no area: %w", source, ErrInvalidArgument)
	}
	if tr := textureRect(img); !tr.ContainsRect(source) {
		return fmt.Errorf("source %v outside texture %dx%d: %w", source, tr.W, tr.H, ErrInvalidArgument)
	}
	return nil
}

// PixelAt reads the texel at p, in texture coordinates relative to the
// image's top-left corner.
func PixelAt(img image.Image, p Point) (Color, error) {
	tr := textureRect(img)
	if !tr.Contains(p) {
		return Color{}, fmt.Errorf("offset %v outside texture %dx%d: %w", p, tr.W, tr.H, ErrInvalidArgument)
	}
	return readPixel(img, img.Bounds().Min, p.X, p.Y), nil
}

// readPixel returns the straight-alpha colour at (x, y) relative to origin.
// NRGBA images, which decoders produce for most PNGs, are read directly.
func readPixel(img image.Image, origin image.Point, x, y int) Color {
	if n, ok := img.(*image.NRGBA); ok {
		i := n.PixOffset(origin.X+x, origin.Y+y)
		s := n.Pix[i : i+4 : i+4]
		return Color{R: s[0], G: s[1], B: s[2], A: s[3]}
	}
	return FromColor(img.At(origin.X+x, origin.Y+y))
}

// FindPixelOffset scans source row by row, left to right then top to
// bottom, starting at its top-left corner.
//
// The first texel exactly equal to target wins and its offset relative to
// source's top-left corner is returned. Without an exact match, ok is
// false unless nearest is set, in which case the texel with the smallest
// distance under metric is returned; ties go to the texel scanned first.
//
// An empty or out-of-bounds source fails with ErrInvalidArgument.
func FindPixelOffset(img image.Image, source Rect, target Color, nearest bool, metric Metric) (offset Point, ok bool, err error) {
	if err := CheckSource(img, source); err != nil {
		return Point{}, false, err
	}

	origin := img.Bounds().Min
	best := math.MaxInt
	var bestAt Point

	for y := 0; y < source.H; y++ {
		for x := 0; x < source.W; x++ {
			c := readPixel(img, origin, source.X+x, source.Y+y)
			if c == target {
				return Point{X: x, Y: y}, true, nil
			}
			if !nearest {
				continue
			}
			// Strict less-than keeps the earliest texel on ties.
			if d := metric.Distance(c, target); d < best {
				best = d
				bestAt = Point{X: x, Y: y}
			}
		}
	}

	if !nearest {
		return Point{}, false, nil
	}
	return bestAt, true, nil
}
