package software

import (
	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/backend"
	"github.com/gogpu/uidriver/effect"
	"github.com/gogpu/uidriver/text"
	"github.com/gogpu/uidriver/texture"
)

// Option configures a Backend during creation.
//
// Example:
//
//	b, err := software.New(800, 600,
//		software.WithTextures(store),
//		software.WithSmoothScaling(true),
//	)
type Option func(*options)

type options struct {
	cfg        backend.Config
	clearColor uidriver.Color
}

// WithTextures sets the texture store. Defaults to an empty MemoryStore.
func WithTextures(s texture.Store) Option {
	return func(o *options) {
		o.cfg.Textures = s
	}
}

// WithFonts sets the font registry. Defaults to a registry holding only
// the built-in default font.
func WithFonts(r *text.Registry) Option {
	return func(o *options) {
		o.cfg.Fonts = r
	}
}

// WithEffects sets the effect registry. Defaults to the built-in effects.
func WithEffects(r *effect.Registry) Option {
	return func(o *options) {
		o.cfg.Effects = r
	}
}

// WithMetric sets the colour distance used by nearest-colour search.
func WithMetric(m uidriver.Metric) Option {
	return func(o *options) {
		o.cfg.Metric = m
	}
}

// WithSmoothScaling selects bilinear texture scaling instead of
// nearest-neighbour.
func WithSmoothScaling(smooth bool) Option {
	return func(o *options) {
		o.cfg.Smooth = smooth
	}
}

// WithClearColor sets the colour Clear fills the framebuffer with.
// Defaults to transparent.
func WithClearColor(c uidriver.Color) Option {
	return func(o *options) {
		o.clearColor = c
	}
}
