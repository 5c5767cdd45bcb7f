package config

import (
	"fmt"
	"slices"

	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/backend"
	// The software backend is always available to configured hosts.
	_ "github.com/gogpu/uidriver/backend/software"
	"github.com/gogpu/uidriver/effect"
	"github.com/gogpu/uidriver/text"
	"github.com/gogpu/uidriver/texture"
)

// Runtime is a configured renderer with the stores behind it.
type Runtime struct {
	Renderer uidriver.Renderer
	Backend  string
	Textures *texture.MemoryStore
	Fonts    *text.Registry
	Effects  *effect.Registry

	watcher *texture.Watcher
}

// Close stops the texture watcher, if any.
func (r *Runtime) Close() error {
	if r.watcher == nil {
		return nil
	}
	return r.watcher.Close()
}

// Build loads textures and fonts and creates the configured backend.
// Backends other than software must be registered by importing their
// package.
func (c *Config) Build() (*Runtime, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	metric, err := uidriver.ParseMetric(c.Metric)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		Backend:  c.Backend,
		Textures: texture.NewMemoryStore(),
		Fonts:    text.NewRegistry(),
		Effects:  effect.NewRegistry(),
	}

	if c.Textures.Dir != "" {
		n, err := texture.LoadDir(rt.Textures, c.Textures.Dir)
		if err != nil {
			return nil, fmt.Errorf("config: textures: %w", err)
		}
		uidriver.Logger().Info("textures loaded", "dir", c.Textures.Dir, "count", n)
	}

	if c.DefaultFont != "" {
		if err := rt.Fonts.RegisterFile(uidriver.DefaultFont, c.DefaultFont); err != nil {
			return nil, &ValidationError{Path: "default_font", Err: err}
		}
	}
	ids := make([]string, 0, len(c.Fonts))
	for id := range c.Fonts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if err := rt.Fonts.RegisterFile(uidriver.FontID(id), c.Fonts[id]); err != nil {
			return nil, &ValidationError{Path: "fonts." + id, Err: err}
		}
	}

	rt.Renderer, err = backend.Get(c.Backend, backend.Config{
		Width:    c.Width,
		Height:   c.Height,
		Textures: rt.Textures,
		Fonts:    rt.Fonts,
		Effects:  rt.Effects,
		Metric:   metric,
		Smooth:   c.SmoothScaling,
	})
	if err != nil {
		return nil, err
	}

	if c.Textures.Watch {
		rt.watcher, err = texture.Watch(rt.Textures, c.Textures.Dir)
		if err != nil {
			return nil, fmt.Errorf("config: watch textures: %w", err)
		}
	}
	return rt, nil
}
