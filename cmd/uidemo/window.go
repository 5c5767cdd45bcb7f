package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/backend/ebitengine"
)

// game redraws the demo frame every tick onto the window.
type game struct {
	ui  *ebitengine.Backend
	err error
}

func (g *game) Update() error {
	return g.err
}

func (g *game) Draw(screen *ebiten.Image) {
	g.ui.SetTarget(screen)
	if err := drawFrame(g.ui); err != nil {
		g.err = err
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// runWindow opens a resizable window and blocks until it is closed.
func runWindow(r uidriver.Renderer, width, height int) error {
	ui, ok := r.(*ebitengine.Backend)
	if !ok {
		return fmt.Errorf("renderer %T is not an ebiten backend", r)
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("uidriver demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&game{ui: ui})
}
