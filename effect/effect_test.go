package effect

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/uidriver"
)

func solid(r image.Rectangle, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestRegistry_BuiltIns(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, []uidriver.EffectID{
		Blur, Brighten, Disabled, Grayscale, Invert, Sepia, Sharpen,
	}, reg.IDs())

	for _, id := range reg.IDs() {
		fn, err := reg.Lookup(id)
		require.NoError(t, err, id)
		assert.NotNil(t, fn, id)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry()

	fn, err := reg.Lookup(uidriver.DefaultEffect)
	require.NoError(t, err)
	assert.Nil(t, fn)

	_, err = reg.Lookup("glow")
	assert.ErrorIs(t, err, uidriver.ErrUnsupportedEffect)
	assert.True(t, uidriver.Skippable(err))
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()
	called := false
	require.NoError(t, reg.Register("custom", func(img image.Image) *image.RGBA {
		called = true
		return image.NewRGBA(img.Bounds())
	}))

	fn, err := reg.Lookup("custom")
	require.NoError(t, err)
	Apply(fn, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.True(t, called)

	assert.ErrorIs(t, reg.Register("", fn), uidriver.ErrInvalidArgument)
	assert.ErrorIs(t, reg.Register("nil", nil), uidriver.ErrInvalidArgument)
}

func TestApply_Grayscale(t *testing.T) {
	fn, err := NewRegistry().Lookup(Grayscale)
	require.NoError(t, err)

	out := Apply(fn, solid(image.Rect(0, 0, 2, 2), color.RGBA{R: 255, A: 255}))
	c := out.RGBAAt(1, 1)
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.G, c.B)
	assert.Equal(t, uint8(255), c.A)
}

func TestApply_InvertKeepsPremultiplied(t *testing.T) {
	fn, err := NewRegistry().Lookup(Invert)
	require.NoError(t, err)

	// Half-transparent black: inverting colour alone would exceed alpha.
	out := Apply(fn, solid(image.Rect(0, 0, 1, 1), color.RGBA{A: 128}))
	c := out.RGBAAt(0, 0)
	assert.Equal(t, uint8(128), c.A)
	assert.LessOrEqual(t, c.R, c.A)
	assert.LessOrEqual(t, c.G, c.A)
	assert.LessOrEqual(t, c.B, c.A)
}

func TestApply_KeepsBounds(t *testing.T) {
	reg := NewRegistry()
	src := solid(image.Rect(5, 7, 13, 15), color.RGBA{R: 40, G: 80, B: 120, A: 255})

	for _, id := range reg.IDs() {
		fn, err := reg.Lookup(id)
		require.NoError(t, err)
		out := Apply(fn, src)
		assert.Equal(t, src.Bounds(), out.Bounds(), id)
	}
}

func TestApply_Disabled(t *testing.T) {
	fn, err := NewRegistry().Lookup(Disabled)
	require.NoError(t, err)

	out := Apply(fn, solid(image.Rect(0, 0, 1, 1), color.RGBA{G: 200, A: 255}))
	c := out.RGBAAt(0, 0)
	assert.Equal(t, uint8(127), c.A)
	assert.Equal(t, c.R, c.G)
}

func TestApply_Nil(t *testing.T) {
	src := solid(image.Rect(0, 0, 2, 1), color.RGBA{R: 1, G: 2, B: 3, A: 4})
	out := Apply(nil, src)
	assert.Equal(t, src.Pix, out.Pix)
	assert.NotSame(t, src, out)
}
