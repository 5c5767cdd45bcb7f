package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/internal/cache"
)

// FontSource represents a loaded font file. One FontSource serves every
// size; glyph masks are cached per size.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	name string

	// shaping is the go-text font; *font.Font is read-only and safe to
	// share, faces are created per shaping call.
	shaping *gtfont.Font

	// outlines is the x/image view of the same file, used for metrics and
	// glyph outlines. sfnt.Buffer is not safe for concurrent use, so
	// outline access goes through mu.
	outlines *sfnt.Font

	shaperPool sync.Pool

	// layouts and masks are keyed by everything that affects their
	// content, so cached entries never go stale.
	layouts *cache.Cache[layoutKey, *Layout]
	masks   *cache.Cache[maskKey, *glyphMask]

	mu     sync.Mutex
	buf    sfnt.Buffer
	closed bool
}

// Cache sizes per FontSource.
const (
	maxCachedLayouts = 1024
	maxCachedMasks   = 4096
)

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	outlines, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	face, err := gtfont.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	s := &FontSource{
		shaping:  face.Font,
		outlines: outlines,
		layouts:  cache.New[layoutKey, *Layout](maxCachedLayouts),
		masks:    cache.New[maskKey, *glyphMask](maxCachedMasks),
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
	s.addr = s
	s.name = extractFontName(outlines)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Close drops cached glyph masks. Using the source afterwards fails with
// ErrClosed.
func (s *FontSource) Close() error {
	s.copyCheck()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	uidriver.Logger().Debug("text: font closed", "font", s.name, "layouts", s.layouts.Stats(), "masks", s.masks.Stats())
	s.layouts.Clear()
	s.masks.Clear()
	return nil
}

// Metrics holds the vertical metrics of a font at one size, in whole
// pixels.
type Metrics struct {
	// Ascent is the distance from the top of a line to the baseline.
	Ascent int
	// Descent is the distance from the baseline to the bottom of the
	// glyphs, positive.
	Descent int
	// LineHeight is the distance between the tops of consecutive lines.
	LineHeight int
}

// Metrics returns the vertical metrics at size pixels per em.
func (s *FontSource) Metrics(size int) (Metrics, error) {
	s.copyCheck()
	if err := checkSize(size); err != nil {
		return Metrics{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Metrics{}, ErrClosed
	}
	m, err := s.outlines.Metrics(&s.buf, fixed.I(size), xfont.HintingNone)
	if err != nil {
		return Metrics{}, fmt.Errorf("text: metrics: %w", err)
	}

	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	height := m.Height.Ceil()
	if height < ascent+descent {
		height = ascent + descent
	}
	return Metrics{Ascent: ascent, Descent: descent, LineHeight: height}, nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName returns the family name, falling back to the full name.
func extractFontName(f *sfnt.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
