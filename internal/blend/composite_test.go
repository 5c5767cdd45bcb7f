package blend

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name     string
		src, dst [4]byte
		want     [4]byte
	}{
		{"opaque source replaces", [4]byte{255, 0, 0, 255}, [4]byte{0, 0, 255, 255}, [4]byte{255, 0, 0, 255}},
		{"transparent source keeps", [4]byte{0, 0, 0, 0}, [4]byte{0, 0, 255, 255}, [4]byte{0, 0, 255, 255}},
		{"half red over blue", [4]byte{128, 0, 0, 128}, [4]byte{0, 0, 255, 255}, [4]byte{128, 0, 127, 255}},
		{"over transparent", [4]byte{64, 64, 64, 128}, [4]byte{}, [4]byte{64, 64, 64, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := SourceOver(tt.src[0], tt.src[1], tt.src[2], tt.src[3],
				tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3])
			assert.Equal(t, tt.want, [4]byte{r, g, b, a})
		})
	}
}

func TestTint(t *testing.T) {
	r, g, b, a := Tint(200, 100, 50, 255, color.NRGBA{255, 255, 255, 255})
	assert.Equal(t, [4]byte{200, 100, 50, 255}, [4]byte{r, g, b, a})

	r, g, b, a = Tint(255, 255, 255, 255, color.NRGBA{255, 0, 0, 128})
	assert.Equal(t, [4]byte{128, 0, 0, 128}, [4]byte{r, g, b, a})
}

func TestFillRect_ClipsToBounds(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	FillRect(dst, image.Rect(2, 2, 10, 10), color.RGBA{0, 255, 0, 255})

	assert.Equal(t, color.RGBA{0, 255, 0, 255}, dst.RGBAAt(3, 3))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, dst.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(1, 1))
}

func TestDrawTinted_SourceOffset(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(3, 3, color.RGBA{255, 255, 255, 255})
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))

	// dst (5,5) maps to src (3,3).
	DrawTinted(dst, image.Rect(2, 2, 6, 6), src, image.Point{}, color.NRGBA{0, 0, 255, 255})
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, dst.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(4, 4))

	// Clipping by dst bounds keeps the mapping.
	dst2 := image.NewRGBA(image.Rect(4, 4, 8, 8))
	DrawTinted(dst2, image.Rect(2, 2, 6, 6), src, image.Point{}, color.NRGBA{255, 255, 255, 255})
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, dst2.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, dst2.RGBAAt(4, 4))
}

func TestDrawMask_Coverage(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 2, 1))
	mask.SetAlpha(0, 0, color.Alpha{255})
	mask.SetAlpha(1, 0, color.Alpha{0})
	dst := image.NewRGBA(image.Rect(0, 0, 2, 1))

	DrawMask(dst, dst.Bounds(), color.RGBA{255, 0, 0, 255}, mask, image.Point{})
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, dst.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(1, 0))
}
