// Package text measures and draws text for uidriver backends.
//
// The pipeline has three stages, each backed by a dedicated library:
//
//   - Normalization: input is converted to NFC (golang.org/x/text) so that
//     measuring and drawing always see the same runes.
//   - Shaping: each line is shaped with HarfBuzz (go-text/typesetting),
//     which applies kerning and ligatures and yields glyph ids and advances.
//   - Rasterization: glyph outlines are loaded from the same font file
//     (golang.org/x/image/font/sfnt) and filled with
//     golang.org/x/image/vector into alpha masks.
//
// # Example usage
//
//	reg := text.NewRegistry()
//	src, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg.Register("body", src)
//
//	w, h, err := src.Measure("Hello", 16, 1)
//
// Measurement is a pure function of text, size and spacing. The spacing
// factor scales every glyph advance; 1 keeps the font's own spacing.
// Multi-line text is split on '\n'; each line is TextLineHeight tall.
package text
