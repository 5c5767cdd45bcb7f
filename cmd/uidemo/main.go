// Command uidemo renders a sample GUI frame through a uidriver backend.
//
// With the software backend the frame is written to a PNG file; with the
// ebiten backend it is shown in a window.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/uidriver"
	"github.com/gogpu/uidriver/backend"
	"github.com/gogpu/uidriver/backend/software"
	"github.com/gogpu/uidriver/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		width      = flag.Int("width", 0, "surface width (overrides config)")
		height     = flag.Int("height", 0, "surface height (overrides config)")
		backendFlg = flag.String("backend", "", "backend name: software or ebiten (overrides config)")
		output     = flag.String("output", "uidemo.png", "output file for the software backend")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("uidemo: %v", err)
		}
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *backendFlg != "" {
		cfg.Backend = *backendFlg
	}

	level, err := cfg.Level()
	if err != nil {
		log.Fatalf("uidemo: %v", err)
	}
	uidriver.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	rt, err := cfg.Build()
	if err != nil {
		log.Fatalf("uidemo: %v", err)
	}
	defer func() { _ = rt.Close() }()
	addPalette(rt.Textures)

	switch r := rt.Renderer.(type) {
	case *software.Backend:
		if err := drawFrame(r); err != nil {
			log.Fatalf("uidemo: %v", err)
		}
		reportPixels(r)
		if err := r.SavePNG(*output); err != nil {
			log.Fatalf("uidemo: save: %v", err)
		}
		log.Printf("Frame saved to %s (%dx%d)", *output, cfg.Width, cfg.Height)
	default:
		if rt.Backend != backend.Ebiten {
			log.Fatalf("uidemo: backend %q has no runner", rt.Backend)
		}
		if err := runWindow(rt.Renderer, cfg.Width, cfg.Height); err != nil {
			log.Fatalf("uidemo: %v", err)
		}
	}
}
