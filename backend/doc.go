// Package backend selects uidriver.Renderer implementations by name.
//
// Backends register a factory from an init() function and are picked at
// runtime, usually from configuration. Importing a backend package is
// enough to make it available:
//
//	import (
//		_ "github.com/gogpu/uidriver/backend/ebitengine"
//		_ "github.com/gogpu/uidriver/backend/software"
//	)
//
// # Backend Selection
//
// Use Get to request a backend by name, or Default for the best one
// available:
//
//	r, err := backend.Get("software", backend.Config{
//		Width:    800,
//		Height:   600,
//		Textures: store,
//	})
//
// # Available Backends
//
//   - "software": CPU compositor into an *image.RGBA (always available)
//   - "ebiten": draws onto an *ebiten.Image owned by the host game loop
package backend
