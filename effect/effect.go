// Package effect maps effect identifiers to image filters.
//
// Backends resolve the effect named in a draw call through a Registry and
// run the filter on the source pixels before tinting and compositing. The
// empty identifier selects no filter.
package effect

import (
	"fmt"
	"image"
	"slices"
	"sync"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/clone"
	bildeffect "github.com/anthonynsimon/bild/effect"

	"github.com/gogpu/uidriver"
)

// Func filters img into a new image. It must not modify img.
type Func func(img image.Image) *image.RGBA

// Built-in effect identifiers.
const (
	Grayscale uidriver.EffectID = "grayscale"
	Sepia     uidriver.EffectID = "sepia"
	Invert    uidriver.EffectID = "invert"
	Blur      uidriver.EffectID = "blur"
	Sharpen   uidriver.EffectID = "sharpen"
	Brighten  uidriver.EffectID = "brighten"
	Disabled  uidriver.EffectID = "disabled"
)

// Registry maps effect identifiers to filters. It is safe for concurrent
// use.
type Registry struct {
	mu      sync.RWMutex
	effects map[uidriver.EffectID]Func
}

// NewRegistry returns a registry holding the built-in effects.
func NewRegistry() *Registry {
	r := &Registry{effects: make(map[uidriver.EffectID]Func)}
	r.effects[Grayscale] = bildeffect.Grayscale
	r.effects[Sepia] = bildeffect.Sepia
	r.effects[Invert] = bildeffect.Invert
	r.effects[Blur] = func(img image.Image) *image.RGBA { return blur.Gaussian(img, 2) }
	r.effects[Sharpen] = bildeffect.Sharpen
	r.effects[Brighten] = func(img image.Image) *image.RGBA { return adjust.Brightness(img, 0.25) }
	r.effects[Disabled] = disabled
	return r
}

// Register adds or replaces the filter for id. The empty id is reserved.
func (r *Registry) Register(id uidriver.EffectID, fn Func) error {
	if id == uidriver.DefaultEffect || fn == nil {
		return fmt.Errorf("effect: register %q: %w", string(id), uidriver.ErrInvalidArgument)
	}
	r.mu.Lock()
	r.effects[id] = fn
	r.mu.Unlock()
	return nil
}

// Lookup returns the filter for id. The empty id returns a nil Func and no
// error; unknown ids fail with uidriver.ErrUnsupportedEffect.
func (r *Registry) Lookup(id uidriver.EffectID) (Func, error) {
	if id == uidriver.DefaultEffect {
		return nil, nil
	}
	r.mu.RLock()
	fn, ok := r.effects[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("effect %q: %w", string(id), uidriver.ErrUnsupportedEffect)
	}
	return fn, nil
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []uidriver.EffectID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]uidriver.EffectID, 0, len(r.effects))
	for id := range r.effects {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Apply runs fn on img and returns a premultiplied image with img's bounds.
// A nil fn copies img.
func Apply(fn Func, img image.Image) *image.RGBA {
	if fn == nil {
		return clone.AsRGBA(img)
	}
	out := fn(img)
	if out == nil {
		return image.NewRGBA(img.Bounds())
	}
	if origin := img.Bounds().Min; out.Rect.Min != origin {
		out.Rect = out.Rect.Sub(out.Rect.Min).Add(origin)
	}
	clampPremultiplied(out)
	return out
}

// clampPremultiplied caps every colour channel at its alpha. Filters work
// on channel values without regard to alpha and can leave colour above it.
func clampPremultiplied(img *image.RGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		p := img.Pix[i : i+4 : i+4]
		a := p[3]
		p[0], p[1], p[2] = min(p[0], a), min(p[1], a), min(p[2], a)
	}
}

// disabled greys the image out and halves its opacity.
func disabled(img image.Image) *image.RGBA {
	out := bildeffect.Grayscale(img)
	for i := range out.Pix {
		out.Pix[i] /= 2
	}
	return out
}
