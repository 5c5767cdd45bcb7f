package backend

import (
	"errors"
	"fmt"

	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/effect"
	"github.com/gogpu/uidriver/text"
	"github.com/gogpu/uidriver/texture"
)

// Backend name constants.
const (
	// Software is the name of the CPU backend.
	Software = "software"
	// Ebiten is the name of the Ebitengine backend.
	Ebiten = "ebiten"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered or none could be created.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Config is what a factory needs to build a renderer. Nil stores are
// replaced with empty ones by Normalize.
type Config struct {
	Width, Height int

	Textures texture.Store
	Fonts    *text.Registry
	Effects  *effect.Registry

	// Metric is the colour distance for nearest-colour search.
	Metric uidriver.Metric

	// Smooth selects bilinear texture scaling instead of nearest-neighbour.
	Smooth bool
}

// Normalize validates the surface size and fills in empty stores.
func (c Config) Normalize() (Config, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return c, fmt.Errorf("backend: surface %dx%d: %w", c.Width, c.Height, uidriver.ErrInvalidArgument)
	}
	if c.Textures == nil {
		c.Textures = texture.NewMemoryStore()
	}
	if c.Fonts == nil {
		c.Fonts = text.NewRegistry()
	}
	if c.Effects == nil {
		c.Effects = effect.NewRegistry()
	}
	return c, nil
}
