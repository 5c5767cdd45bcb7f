package text

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/uidriver"
)

// positionedGlyph is a glyph placed on a line. X is the pen position in
// pixels from the line's left edge, Y the vertical offset from the baseline.
type positionedGlyph struct {
	id   gtfont.GID
	x, y float32
}

// line is one shaped line of text.
type line struct {
	glyphs []positionedGlyph
	width  float32
}

type layoutKey struct {
	text    string
	size    int
	spacing float32
}

// Layout is shaped, positioned text ready to be measured or drawn.
type Layout struct {
	lines   []line
	size    int
	metrics Metrics
}

// Size returns the pixel size of the layout: the widest line rounded up,
// and one LineHeight per line.
func (l *Layout) Size() (width, height int) {
	var w float32
	for _, ln := range l.lines {
		w = max(w, ln.width)
	}
	return int(math32.Ceil(w)), len(l.lines) * l.metrics.LineHeight
}

// Lines returns the number of lines.
func (l *Layout) Lines() int {
	return len(l.lines)
}

func checkSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("text: font size %d: %w", size, uidriver.ErrInvalidArgument)
	}
	return nil
}

func checkSpacing(spacing float32) error {
	if spacing < 0 || math32.IsNaN(spacing) || math32.IsInf(spacing, 0) {
		return fmt.Errorf("text: spacing %v: %w", spacing, uidriver.ErrInvalidArgument)
	}
	return nil
}

// Layout shapes text at size pixels per em. Every glyph advance is scaled
// by spacing. The result depends only on the arguments and is cached; it
// must not be modified.
func (s *FontSource) Layout(text string, size int, spacing float32) (*Layout, error) {
	s.copyCheck()
	if err := checkSpacing(spacing); err != nil {
		return nil, err
	}
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return s.layouts.GetOrCreate(layoutKey{text: text, size: size, spacing: spacing}, func() (*Layout, error) {
		return s.layout(text, size, spacing)
	})
}

func (s *FontSource) layout(text string, size int, spacing float32) (*Layout, error) {
	metrics, err := s.Metrics(size)
	if err != nil {
		return nil, err
	}

	text = norm.NFC.String(text)
	rawLines := strings.Split(text, "\n")

	l := &Layout{lines: make([]line, len(rawLines)), size: size, metrics: metrics}
	for i, raw := range rawLines {
		l.lines[i] = s.shapeLine(strings.TrimSuffix(raw, "\r"), size, spacing)
	}
	return l, nil
}

// Measure returns the pixel size text occupies. The empty string is zero
// wide and one line high.
func (s *FontSource) Measure(text string, size int, spacing float32) (width, height int, err error) {
	l, err := s.Layout(text, size, spacing)
	if err != nil {
		return 0, 0, err
	}
	width, height = l.Size()
	return width, height, nil
}

// shapeLine shapes a single line left to right.
func (s *FontSource) shapeLine(text string, size int, spacing float32) line {
	if text == "" {
		return line{}
	}
	runes := []rune(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		// font.Face is not safe for concurrent use; NewFace is cheap.
		Face:     gtfont.NewFace(s.shaping),
		Size:     fixed.I(size),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shaperPool.Put(hb)

	ln := line{glyphs: make([]positionedGlyph, 0, len(out.Glyphs))}
	var pen float32
	for _, g := range out.Glyphs {
		ln.glyphs = append(ln.glyphs, positionedGlyph{
			id: g.GlyphID,
			x:  pen + fixedToFloat(g.XOffset),
			// go-text offsets point up; raster y points down.
			y: -fixedToFloat(g.YOffset),
		})
		pen += fixedToFloat(g.Advance) * spacing
	}
	ln.width = max(pen, 0)
	return ln
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fixedToFloat converts a fixed.Int26_6 value to float32.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
