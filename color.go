package uidriver

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit straight-alpha RGBA colour. Two colours are an exact
// match when all four channels are equal, which is plain == comparison.
type Color struct {
	R, G, B, A uint8
}

// Common colors
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from all four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA implements color.Color. The returned values are alpha-premultiplied
// as the interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA converts to the standard library straight-alpha type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Premultiplied returns the channels multiplied by alpha.
func (c Color) Premultiplied() color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// FromColor converts a standard color.Color to a straight-alpha Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#'.
// Malformed input returns an error wrapping ErrInvalidArgument.
func Hex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [8]uint8
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok || len(s) > 8 {
			return Color{}, fmt.Errorf("uidriver: color %q: %w", hex, ErrInvalidArgument)
		}
		v[i] = d
	}

	switch len(s) {
	case 3: // RGB
		return Color{v[0] * 17, v[1] * 17, v[2] * 17, 255}, nil
	case 4: // RGBA
		return Color{v[0] * 17, v[1] * 17, v[2] * 17, v[3] * 17}, nil
	case 6: // RRGGBB
		return Color{v[0]<<4 | v[1], v[2]<<4 | v[3], v[4]<<4 | v[5], 255}, nil
	case 8: // RRGGBBAA
		return Color{v[0]<<4 | v[1], v[2]<<4 | v[3], v[4]<<4 | v[5], v[6]<<4 | v[7]}, nil
	default:
		return Color{}, fmt.Errorf("uidriver: color %q: %w", hex, ErrInvalidArgument)
	}
}

// MustHex is like Hex but panics on malformed input. Intended for constants.
func MustHex(hex string) Color {
	c, err := Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Hex returns the color as "#RRGGBBAA".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) String() string {
	return c.Hex()
}

// Modulate multiplies two colors channel by channel, the way a tint is
// applied to a texel.
func (c Color) Modulate(tint Color) Color {
	return Color{
		R: mul8(c.R, tint.R),
		G: mul8(c.G, tint.G),
		B: mul8(c.B, tint.B),
		A: mul8(c.A, tint.A),
	}
}

// mul8 computes a*b/255 with rounding.
func mul8(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 128
	return uint8((t + t>>8) >> 8)
}
