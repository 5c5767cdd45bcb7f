package backend

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/texture"
)

// stubRenderer satisfies uidriver.Renderer for registry tests.
type stubRenderer struct {
	uidriver.Renderer
	cfg Config
}

func register(t *testing.T, name string, f Factory) {
	t.Helper()
	Register(name, f)
	t.Cleanup(func() { Unregister(name) })
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	register(t, "stub", func(cfg Config) (uidriver.Renderer, error) {
		return &stubRenderer{cfg: cfg}, nil
	})

	assert.True(t, IsRegistered("stub"))
	assert.Contains(t, Available(), "stub")

	r, err := Get("stub", Config{Width: 64, Height: 32})
	require.NoError(t, err)
	s := r.(*stubRenderer)
	assert.Equal(t, 64, s.cfg.Width)
	assert.NotNil(t, s.cfg.Textures, "stores are filled in")
	assert.NotNil(t, s.cfg.Fonts)
	assert.NotNil(t, s.cfg.Effects)
}

func TestRegistry_GetUnknown(t *testing.T) {
	_, err := Get("does-not-exist", Config{Width: 1, Height: 1})
	assert.ErrorIs(t, err, ErrBackendNotAvailable)
}

func TestRegistry_InvalidSize(t *testing.T) {
	register(t, "stub", func(cfg Config) (uidriver.Renderer, error) {
		return &stubRenderer{cfg: cfg}, nil
	})
	_, err := Get("stub", Config{Width: 0, Height: 10})
	assert.ErrorIs(t, err, uidriver.ErrInvalidArgument)
}

func TestRegistry_Unregister(t *testing.T) {
	Register("temp", func(Config) (uidriver.Renderer, error) { return &stubRenderer{}, nil })
	Unregister("temp")
	assert.False(t, IsRegistered("temp"))
}

func TestRegistry_AvailableSorted(t *testing.T) {
	register(t, "zz-stub", func(Config) (uidriver.Renderer, error) { return &stubRenderer{}, nil })
	register(t, "aa-stub", func(Config) (uidriver.Renderer, error) { return &stubRenderer{}, nil })
	names := Available()
	assert.IsNonDecreasing(t, names)
}

func TestDefault_Priority(t *testing.T) {
	register(t, Software, func(Config) (uidriver.Renderer, error) { return &stubRenderer{}, nil })
	register(t, Ebiten, func(Config) (uidriver.Renderer, error) { return nil, errors.New("no display") })

	_, name, err := Default(Config{Width: 8, Height: 8})
	require.NoError(t, err)
	assert.Equal(t, Software, name, "falls back when the preferred backend fails")
}

func TestDefault_NoneWorks(t *testing.T) {
	for _, name := range Available() {
		f := backends[name]
		Unregister(name)
		t.Cleanup(func() { Register(name, f) })
	}
	_, _, err := Default(Config{Width: 8, Height: 8})
	assert.ErrorIs(t, err, ErrBackendNotAvailable)

	register(t, "broken", func(Config) (uidriver.Renderer, error) { return nil, errors.New("boom") })
	_, _, err = Default(Config{Width: 8, Height: 8})
	assert.ErrorIs(t, err, ErrBackendNotAvailable)
	assert.ErrorContains(t, err, "boom")
}

func solid(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestSourceRegion_UsesResolvedImage(t *testing.T) {
	cfg, err := Config{Width: 8, Height: 8}.Normalize()
	require.NoError(t, err)
	res := NewResources(cfg)
	store := cfg.Textures.(*texture.MemoryStore)

	store.Put("icon", solid(color.NRGBA{R: 255, A: 255}))
	img, err := res.Texture("DrawTexture", "icon")
	require.NoError(t, err)

	// A reload between resolving and reading must not leak into the region.
	store.Put("icon", solid(color.NRGBA{B: 255, A: 255}))
	region, err := SourceRegion("DrawTexture", "icon", img, uidriver.NewRect(1, 1, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(1, 1, 3, 3), region.Bounds())
	assert.Equal(t, uidriver.RGB(255, 0, 0), uidriver.FromColor(region.At(1, 1)))

	_, err = SourceRegion("DrawTexture", "icon", img, uidriver.NewRect(3, 3, 2, 2))
	assert.ErrorIs(t, err, uidriver.ErrInvalidArgument)
	var opErr *uidriver.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "icon", opErr.Resource)
}
