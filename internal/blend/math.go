// Package blend implements the 8-bit compositing the software backend
// writes with: source-over for flat fills, tinted texels and glyph masks.
//
// All destination pixels are premultiplied RGBA, the layout of
// image.RGBA. Division by 255 is done with Alvy Ray Smith's shift formula,
// which is exact for every product of two bytes.
package blend

// div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
func div255(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 returns round(a*b/255).
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a)*uint16(b) + 127))
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x byte) byte {
	return 255 - x
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
