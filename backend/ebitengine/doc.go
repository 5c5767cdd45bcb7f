// Package ebitengine implements uidriver.Renderer on top of Ebitengine.
//
// The backend draws onto an *ebiten.Image chosen by the host, normally the
// screen passed to Game.Draw:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.ui.SetTarget(screen)
//		g.gui.Render(g.ui)
//	}
//
// Textures are uploaded once per texture, effect and source region and
// kept in an LRU cache. Text is shaped and rasterized on the CPU by the
// text package, then uploaded, so measurement matches the software backend
// exactly. Scissoring maps to sub-images of the target.
//
// Importing the package registers it as "ebiten" with the backend
// registry.
package ebitengine
