package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiv255(t *testing.T) {
	for x := 0; x <= 255*255; x++ {
		if got := int(div255(uint16(x))); got != x/255 {
			t.Fatalf("div255(%d) = %d, want %d", x, got, x/255)
		}
	}
}

func TestMulDiv255Rounds(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			want := (a*b + 127) / 255
			if got := int(mulDiv255(byte(a), byte(b))); got != want {
				t.Fatalf("mulDiv255(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestInvAndClamp(t *testing.T) {
	assert.Equal(t, byte(255), inv255(0))
	assert.Equal(t, byte(127), inv255(128))
	assert.Equal(t, byte(255), addClamp(200, 100))
	assert.Equal(t, byte(30), addClamp(10, 20))
}
