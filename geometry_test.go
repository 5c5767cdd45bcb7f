package uidriver

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Intersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 100, 100), NewRect(10, 20, 30, 40), NewRect(10, 20, 30, 40)},
		{"identical", NewRect(3, 4, 5, 6), NewRect(3, 4, 5, 6), NewRect(3, 4, 5, 6)},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 5, 5), Rect{X: 20, Y: 20}},
		{"touching edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), Rect{X: 10, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, tt.b.Intersect(tt.a), "intersection must be symmetric")
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 4, 4)
	assert.True(t, r.Contains(Pt(10, 10)))
	assert.True(t, r.Contains(Pt(13, 13)))
	assert.False(t, r.Contains(Pt(14, 10)))
	assert.False(t, r.Contains(Pt(9, 10)))

	assert.True(t, r.ContainsRect(NewRect(11, 11, 3, 3)))
	assert.False(t, r.ContainsRect(NewRect(11, 11, 4, 3)))
}

func TestRect_ImageConversion(t *testing.T) {
	r := NewRect(-2, 3, 7, 8)
	assert.Equal(t, image.Rect(-2, 3, 5, 11), r.Image())
	assert.Equal(t, r, RectFromImage(r.Image()))
	assert.True(t, Rect{W: 0, H: 5}.Empty())
	assert.False(t, r.Empty())
}

func TestPoint_Arithmetic(t *testing.T) {
	assert.Equal(t, Pt(4, 6), Pt(1, 2).Add(Pt(3, 4)))
	assert.Equal(t, Pt(-2, -2), Pt(1, 2).Sub(Pt(3, 4)))
	assert.Equal(t, NewRect(5, 7, 1, 1), NewRect(1, 2, 1, 1).Offset(Pt(4, 5)))
}
