package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/texture"
)

// paletteID is the generated texture used by the demo.
const paletteID = "uidemo/palette"

// addPalette stores a 16x16 hue/brightness ramp unless a texture with the
// same id was loaded from disk.
func addPalette(store *texture.MemoryStore) {
	if _, err := store.Texture(paletteID); err == nil {
		return
	}
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 17), G: uint8(y * 17), B: uint8(255 - x*17), A: 255})
		}
	}
	store.Put(paletteID, img)
}

var (
	background = uidriver.MustHex("#1e2430")
	panelFill  = uidriver.MustHex("#2f3a4d")
	listFill   = uidriver.MustHex("#3c4a63")
	titleColor = uidriver.MustHex("#f0f4ff")
	rowColor   = uidriver.MustHex("#c8d3ea")
)

// drawFrame draws one frame the way a GUI layer would: each widget is
// clipped to its parent through a scissor stack. Draw errors that only
// affect one call are logged and skipped.
func drawFrame(r uidriver.Renderer) error {
	screen := r.ScreenBounds()
	stack := uidriver.NewScissorStack(r)
	defer stack.Reset()

	draw := func(err error) error {
		if err == nil || !uidriver.Skippable(err) {
			return err
		}
		uidriver.Logger().Debug("uidemo: draw skipped", "err", err)
		return nil
	}

	if err := r.DrawRectangle(screen, background); err != nil {
		return err
	}

	panel := uidriver.NewRect(screen.W/10, screen.H/10, screen.W*8/10, screen.H*8/10)
	return uidriver.WithScissor(stack, panel, func() error {
		if err := r.DrawRectangle(panel, panelFill); err != nil {
			return err
		}
		lh, err := r.TextLineHeight(uidriver.DefaultFont, 20)
		if err != nil {
			return err
		}
		title := panel.Min().Add(uidriver.Pt(12, 8))
		if err := draw(r.DrawText("", "uidriver demo", uidriver.DefaultFont, 20, title,
			titleColor, uidriver.Black, 1, 1)); err != nil {
			return err
		}

		// The list is shorter than its rows, so the last rows are clipped.
		list := uidriver.NewRect(panel.X+12, title.Y+lh+8, panel.W/2, max(panel.H/2, 1))
		err = uidriver.WithScissor(stack, list, func() error {
			if err := r.DrawRectangle(list, listFill); err != nil {
				return err
			}
			rowH, err := r.TextLineHeight(uidriver.DefaultFont, 14)
			if err != nil {
				return err
			}
			for i := 0; i < 32; i++ {
				pos := uidriver.Pt(list.X+6, list.Y+4+i*rowH)
				if err := draw(r.DrawText("", fmt.Sprintf("Row %02d", i), uidriver.DefaultFont, 14, pos,
					rowColor, uidriver.Transparent, 0, 1)); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		// Palette swatches: plain, tinted, and with an effect.
		src := uidriver.NewRect(0, 0, 16, 16)
		x := list.Right() + 16
		for i, call := range []struct {
			effect uidriver.EffectID
			tint   uidriver.Color
		}{
			{"", uidriver.White},
			{"", uidriver.RGBA(255, 255, 255, 128)},
			{"grayscale", uidriver.White},
			{"disabled", uidriver.White},
		} {
			dest := uidriver.NewRect(x, list.Y+i*40, 32, 32)
			if err := draw(r.DrawTexture(call.effect, paletteID, dest, src, call.tint)); err != nil {
				return err
			}
		}

		// A texture the asset pipeline forgot: skipped, the frame goes on.
		return draw(r.DrawTexture("", "icons/missing", uidriver.NewRect(x, panel.Y+8, 16, 16), src, uidriver.White))
	})
}

// reportPixels logs a few palette queries.
func reportPixels(r uidriver.Renderer) {
	log := uidriver.Logger()
	src := uidriver.NewRect(4, 4, 8, 8)

	for _, c := range []uidriver.Color{
		uidriver.RGBA(102, 119, 153, 255), // texel (6,7)
		uidriver.RGBA(100, 120, 150, 255), // close to (6,7)
		uidriver.RGBA(0, 0, 0, 255),       // far from everything
	} {
		off, ok, err := r.FindPixelOffsetInTexture(paletteID, src, c, true)
		if err != nil {
			log.Warn("uidemo: pixel search failed", "err", err)
			continue
		}
		found, err := r.PixelFromTexture(paletteID, src.Min().Add(off))
		if err != nil {
			log.Warn("uidemo: pixel read failed", "err", err)
			continue
		}
		log.Info("uidemo: nearest colour", "want", c, "found", ok, "offset", off, "colour", found)
	}
}
