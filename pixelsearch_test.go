package uidriver

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// filledNRGBA returns a w x h texture filled with c.
func filledNRGBA(w, h int, c Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c.NRGBA())
		}
	}
	return img
}

func TestFindPixelOffset_RelativeToSource(t *testing.T) {
	img := filledNRGBA(32, 32, Black)
	img.SetNRGBA(12, 11, Red.NRGBA())

	off, ok, err := FindPixelOffset(img, NewRect(10, 10, 4, 4), Red, false, MetricManhattan)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Pt(2, 1), off)
}

func TestFindPixelOffset_ExactOnlyWhenPresent(t *testing.T) {
	img := filledNRGBA(8, 8, Black)
	img.SetNRGBA(7, 7, Red.NRGBA())

	// Red exists only outside the searched region.
	_, ok, err := FindPixelOffset(img, NewRect(0, 0, 4, 4), Red, false, MetricManhattan)
	require.NoError(t, err)
	assert.False(t, ok)

	off, ok, err := FindPixelOffset(img, NewRect(4, 4, 4, 4), Red, false, MetricManhattan)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Pt(3, 3), off)
}

func TestFindPixelOffset_FirstExactMatchInScanOrder(t *testing.T) {
	img := filledNRGBA(8, 8, Black)
	img.SetNRGBA(1, 3, Blue.NRGBA())
	img.SetNRGBA(5, 2, Blue.NRGBA()) // earlier row wins
	img.SetNRGBA(0, 3, Blue.NRGBA())

	off, ok, err := FindPixelOffset(img, NewRect(0, 0, 8, 8), Blue, true, MetricManhattan)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Pt(5, 2), off)
}

func TestFindPixelOffset_Nearest(t *testing.T) {
	img := filledNRGBA(4, 4, Black)
	img.SetNRGBA(2, 1, color.NRGBA{200, 0, 0, 255})
	img.SetNRGBA(3, 3, color.NRGBA{250, 0, 0, 255})

	off, ok, err := FindPixelOffset(img, NewRect(0, 0, 4, 4), Red, true, MetricManhattan)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Pt(3, 3), off)
}

func TestFindPixelOffset_NearestTieGoesToEarliest(t *testing.T) {
	img := filledNRGBA(4, 4, Black)
	// Both are 10 away from the target under either metric's R channel.
	img.SetNRGBA(3, 0, color.NRGBA{110, 0, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{90, 0, 0, 255})
	img.SetNRGBA(2, 2, color.NRGBA{90, 0, 0, 255})
	target := RGB(100, 0, 0)

	for _, m := range []Metric{MetricManhattan, MetricEuclideanRGB} {
		t.Run(m.String(), func(t *testing.T) {
			for i := 0; i < 3; i++ {
				off, ok, err := FindPixelOffset(img, NewRect(0, 0, 4, 4), target, true, m)
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, Pt(3, 0), off)
			}
		})
	}
}

func TestFindPixelOffset_AlphaHandlingPerMetric(t *testing.T) {
	img := filledNRGBA(2, 1, Black)
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 0})   // transparent red
	img.SetNRGBA(1, 0, color.NRGBA{240, 0, 0, 255}) // opaque near-red

	off, _, err := FindPixelOffset(img, NewRect(0, 0, 2, 1), Red, true, MetricManhattan)
	require.NoError(t, err)
	assert.Equal(t, Pt(1, 0), off, "manhattan weighs alpha")

	off, _, err = FindPixelOffset(img, NewRect(0, 0, 2, 1), Red, true, MetricEuclideanRGB)
	require.NoError(t, err)
	assert.Equal(t, Pt(0, 0), off, "euclidean-rgb ignores alpha")
}

func TestFindPixelOffset_InvalidSource(t *testing.T) {
	img := filledNRGBA(8, 8, Black)
	for _, src := range []Rect{
		NewRect(0, 0, 0, 4),
		NewRect(0, 0, 4, -1),
		NewRect(6, 6, 4, 4),
		NewRect(-1, 0, 2, 2),
	} {
		_, ok, err := FindPixelOffset(img, src, Black, true, MetricManhattan)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "source %v: %v", src, err)
	}
}

func TestFindPixelOffset_PremultipliedImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.Set(1, 2, color.NRGBA{0, 255, 0, 255})

	off, ok, err := FindPixelOffset(img, NewRect(0, 0, 3, 3), Green, false, MetricManhattan)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Pt(1, 2), off)
}

func TestFindPixelOffset_SubImageOrigin(t *testing.T) {
	img := filledNRGBA(16, 16, Black)
	img.SetNRGBA(9, 9, Red.NRGBA())
	sub := img.SubImage(image.Rect(8, 8, 16, 16))

	// Texture coordinates are relative to the sub-image's own origin.
	off, ok, err := FindPixelOffset(sub, NewRect(0, 0, 4, 4), Red, false, MetricManhattan)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Pt(1, 1), off)
}

func TestPixelAt_Bounds(t *testing.T) {
	img := filledNRGBA(5, 3, White)
	img.SetNRGBA(4, 2, Blue.NRGBA())

	c, err := PixelAt(img, Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, White, c)

	c, err = PixelAt(img, Pt(4, 2))
	require.NoError(t, err)
	assert.Equal(t, Blue, c)

	for _, p := range []Point{{5, 0}, {0, 3}, {-1, 0}} {
		_, err = PixelAt(img, p)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "offset %v", p)
	}
}

func TestMetric_ParseAndDistance(t *testing.T) {
	for _, m := range []Metric{MetricManhattan, MetricEuclideanRGB} {
		got, err := ParseMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMetric("cosine")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	a, b := RGBA(10, 20, 30, 40), RGBA(13, 16, 30, 50)
	assert.Equal(t, 3+4+0+10, MetricManhattan.Distance(a, b))
	assert.Equal(t, 9+16, MetricEuclideanRGB.Distance(a, b))
	assert.Equal(t, 0, MetricManhattan.Distance(a, a))
}
