package main

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"

	"fortio.org/log"
	"github.com/schollz/progressbar/v3"

	"github.com/geofpwhite/softcube/framebuffer"
	"github.com/geofpwhite/softcube/geom"
	"github.com/geofpwhite/softcube/scene"
)

// gifPalette is black, the mesh colors with a darker and a lighter shade each,
// and a gray ramp for the blends.
func gifPalette(colors []geom.Color) color.Palette {
	palette := color.Palette{color.Black}
	for _, c := range colors {
		base, _ := framebuffer.ToNRGBA(c)
		palette = append(palette, base)
		// Darker shade
		palette = append(palette, color.NRGBA{base.R / 2, base.G / 2, base.B / 2, 255})
		// Lighter shade
		palette = append(palette, color.NRGBA{
			uint8(min(255, int(base.R)*3/2)),
			uint8(min(255, int(base.G)*3/2)),
			uint8(min(255, int(base.B)*3/2)),
			255,
		})
	}
	for i := 0; i < 32 && len(palette) < 256; i++ {
		gray := uint8(i * 8)
		palette = append(palette, color.NRGBA{gray, gray, gray, 255})
	}
	if len(palette) > 256 {
		palette = palette[:256]
	}
	return palette
}

type gifWriter struct {
	palette color.Palette
	delay   int
	out     gif.GIF
}

func newGifWriter(palette color.Palette, fps float64) *gifWriter {
	delay := int(100 / fps) // Convert fps to centiseconds delay
	if delay < 1 {
		delay = 1
	}
	return &gifWriter{palette: palette, delay: delay, out: gif.GIF{LoopCount: 0}}
}

// add converts one frame to the palette, pixel by pixel for the closest match.
func (w *gifWriter) add(img *image.NRGBA) {
	bounds := img.Bounds()
	paletted := image.NewPaletted(bounds, w.palette)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			paletted.Set(x, y, img.NRGBAAt(x, y))
		}
	}
	w.out.Image = append(w.out.Image, paletted)
	w.out.Delay = append(w.out.Delay, w.delay)
}

func (w *gifWriter) save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}
	if err := gif.EncodeAll(f, &w.out); err != nil {
		f.Close()
		return fmt.Errorf("encode gif: %w", err)
	}
	return f.Close()
}

// exportToGif renders frames redraws of sc offscreen into a looping GIF.
func exportToGif(sc *scene.Scene, frames int, fps float64, path string) error {
	vp := sc.Config().Viewport
	fb := framebuffer.New(vp.Width, vp.Height)
	w := newGifWriter(gifPalette(sc.Base().Colors()), fps)
	bar := progressbar.Default(int64(frames), "rendering")
	defer bar.Close()
	for range frames {
		sc.RenderFrame(fb)
		w.add(fb.Image())
		_ = bar.Add(1)
	}
	if err := w.save(path); err != nil {
		return err
	}
	log.S(log.Info, "Wrote gif", log.Str("path", path), log.Attr("frames", frames),
		log.Attr("angle", sc.Angle()), log.Attr("clamped", fb.OutOfRange()))
	return nil
}

// exportPPM renders a single frame of sc to path.
func exportPPM(sc *scene.Scene, path string) error {
	vp := sc.Config().Viewport
	fb := framebuffer.New(vp.Width, vp.Height)
	sc.RenderFrame(fb)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ppm: %w", err)
	}
	if err := fb.WritePPM(f); err != nil {
		f.Close()
		return err
	}
	log.Infof("Wrote %s: %d/%d triangles, %d pixels", path, sc.Stats().Drawn, sc.Stats().Triangles, sc.Stats().Pixels)
	return f.Close()
}
