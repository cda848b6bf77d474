// Command cubewin shows the software rendered cube in a desktop window. The
// window only presents: every Draw call renders one frame on the CPU and
// copies the back buffer to the screen.
package main

import (
	"errors"
	"flag"
	"os"

	"fortio.org/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/geofpwhite/softcube/framebuffer"
	"github.com/geofpwhite/softcube/internal/settings"
	"github.com/geofpwhite/softcube/scene"
)

type window struct {
	sc *scene.Scene
	fb *framebuffer.Framebuffer
}

func (w *window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	w.sc.RenderFrame(w.fb)
	screen.WritePixels(w.fb.Image().Pix)
}

func (w *window) Layout(_, _ int) (int, int) {
	b := w.fb.Bounds()
	return b.Dx(), b.Dy()
}

func main() {
	log.SetDefaultsForClientTools()
	cfg, err := settings.FromEnv()
	if err != nil {
		log.Warnf("Ignoring bad environment: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	scale := flag.Float64("scale", 1, "window size multiplier")
	log.LoggerStaticFlagSetup()
	flag.Parse()

	sc, err := cfg.NewScene()
	if err != nil {
		log.Errf("Unable to set up the scene: %v", err)
		os.Exit(1)
	}
	vp := sc.Config().Viewport
	w := &window{sc: sc, fb: framebuffer.New(vp.Width, vp.Height)}

	ebiten.SetWindowTitle("softcube")
	ebiten.SetWindowSize(int(float64(vp.Width)*(*scale)), int(float64(vp.Height)*(*scale)))
	ebiten.SetTPS(cfg.TPS())
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Errf("%v", err)
		os.Exit(1)
	}
	log.Infof("Rendered %d frames, angle %.3f", sc.Frames(), sc.Angle())
}
