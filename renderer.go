package uidriver

// EffectID names a rendering pipeline applied to a draw call.
// The zero value selects the backend's default pipeline.
type EffectID string

// DefaultEffect selects the default pipeline.
const DefaultEffect EffectID = ""

// FontID names a font known to the backend's font store.
// The zero value selects the default font.
type FontID string

// DefaultFont selects the backend's default font.
const DefaultFont FontID = ""

// Renderer is the operation set a backend must implement for the GUI
// layer. Implementations are bound to one graphics API each and are not
// safe for concurrent use.
//
// Every draw operation respects the current scissor region: pixels outside
// it are never written. Draw calls never reset the scissor region and are
// executed in call order.
type Renderer interface {
	// ScreenBounds returns the current output surface bounds in pixels.
	// It reflects live resizes and has no side effects.
	ScreenBounds() Rect

	// DrawTexture blits the source rectangle of a texture into dest,
	// scaling when the sizes differ and multiplying every texel by tint.
	// A source rectangle that is empty or not fully inside the texture
	// fails with ErrInvalidArgument.
	DrawTexture(effect EffectID, textureID string, dest, source Rect, tint Color) error

	// MeasureText returns the size in pixels text would occupy when drawn,
	// without drawing it. It is a pure function of its arguments. The
	// empty string measures zero wide and one line high.
	MeasureText(text string, font FontID, size int, spacing float32) (Point, error)

	// TextLineHeight returns the height of a single line, consistent with
	// the height MeasureText reports for single-line text.
	TextLineHeight(font FontID, size int) (int, error)

	// DrawText renders text with its top-left corner at pos. The outline
	// is drawn under the fill; outlineWidth 0 disables it.
	DrawText(effect EffectID, text string, font FontID, size int, pos Point, fill, outline Color, outlineWidth int, spacing float32) error

	// DrawRectangle fills r with a flat color.
	DrawRectangle(r Rect, c Color) error

	// SetScissorRegion replaces the current scissor region. It does not
	// intersect with the previous region. A zero-size region is valid and
	// clips everything; a negative size fails with ErrInvalidArgument.
	SetScissorRegion(r Rect) error

	// ScissorRegion returns the current scissor region, if set.
	ScissorRegion() (Rect, bool)

	// ClearScissorRegion removes the scissor region, if set.
	ClearScissorRegion()

	// PixelFromTexture reads the texel at pos, in absolute texture
	// coordinates. Out-of-bounds positions fail with ErrInvalidArgument.
	PixelFromTexture(textureID string, pos Point) (Color, error)

	// FindPixelOffsetInTexture searches source for c as described by
	// FindPixelOffset. The offset is relative to source's top-left corner;
	// ok is false when nothing matched.
	FindPixelOffsetInTexture(textureID string, source Rect, c Color, returnNearest bool) (offset Point, ok bool, err error)
}
