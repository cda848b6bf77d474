package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"os/signal"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"golang.org/x/image/draw"

	"github.com/geofpwhite/softcube/framebuffer"
	"github.com/geofpwhite/softcube/internal/settings"
	"github.com/geofpwhite/softcube/scene"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	log.SetDefaultsForClientTools()
	cfg, err := settings.FromEnv()
	if err != nil {
		log.Warnf("Ignoring bad environment: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	log.LoggerStaticFlagSetup()
	flag.Parse()

	sc, err := cfg.NewScene()
	if err != nil {
		log.Errf("Unable to set up the scene: %v", err)
		return 1
	}
	switch {
	case cfg.PPM != "":
		err = exportPPM(sc, cfg.PPM)
	case cfg.GIF > 0:
		err = exportToGif(sc, cfg.GIF, cfg.FPS, cfg.GIFPath)
	default:
		err = runTerminal(sc, cfg.FPS)
	}
	if err != nil {
		log.Errf("%v", err)
		return 1
	}
	return 0
}

// runTerminal shows the scene with half block pixels until 'q' or ^C. Every
// FPS tick is one redraw: render into the back buffer, then present it.
func runTerminal(sc *scene.Scene, fps float64) error {
	vp := sc.Config().Viewport
	fb := framebuffer.New(vp.Width, vp.Height)

	ap := ansipixels.NewAnsiPixels(fps)
	ap.HideCursor()
	if err := ap.Open(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	errMessage := ""
	defer func() {
		ap.ShowCursor()
		ap.ClearScreen()
		ap.Restore()
		if len(errMessage) > 0 {
			fmt.Println(errMessage)
		}
		log.Infof("Rendered %d frames, angle %.3f", sc.Frames(), sc.Angle())
	}()
	ap.ClearScreen()
	ap.SyncBackgroundColor()
	fb.Background = color.NRGBA{ap.Background.R, ap.Background.G, ap.Background.B, 255}

	// terminal cells are two pixels high
	img := image.NewRGBA(image.Rect(0, 0, ap.W, ap.H*2))
	ap.OnResize = func() error {
		img = image.NewRGBA(image.Rect(0, 0, ap.W, ap.H*2))
		ap.ClearScreen()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	var presentErr error
	err := ap.FPSTicks(ctx, func(context.Context) bool {
		sc.RenderFrame(fb)
		draw.Draw(img, img.Bounds(), &image.Uniform{fb.Background}, image.Point{}, draw.Src)
		fb.PresentTo(img, framebuffer.Fit(fb.Bounds(), img.Bounds()))
		if err := present(ap, img); err != nil {
			presentErr = err
			errMessage = err.Error()
			return false
		}
		return !(len(ap.Data) > 0 && ap.Data[0] == 'q')
	})
	return loopError(err, presentErr, ctx.Err())
}

// loopError picks the error runTerminal reports: a failed redraw first, then
// a tick loop failure unless it came from ^C.
func loopError(tickErr, presentErr, ctxErr error) error {
	if presentErr != nil {
		return fmt.Errorf("draw frame: %w", presentErr)
	}
	if tickErr != nil && ctxErr == nil {
		return tickErr
	}
	return nil
}

func present(ap *ansipixels.AnsiPixels, img *image.RGBA) error {
	ap.StartSyncMode()
	defer ap.EndSyncMode()
	if ap.ColorOutput.TrueColor {
		return ap.DrawTrueColorImage(0, 0, img)
	}
	return ap.Draw216ColorImage(0, 0, img)
}
