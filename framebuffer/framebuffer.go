// Package framebuffer is the off-screen pixel sink the renderer draws into and
// the hosts present from.
package framebuffer

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"fortio.org/safecast"
	pnm "github.com/jbuchbinder/gopnm"
	"golang.org/x/image/draw"

	"github.com/geofpwhite/softcube/geom"
)

// Framebuffer is an NRGBA back buffer. Colors arriving outside [0,255] are
// clamped at the door and counted.
type Framebuffer struct {
	img        *image.NRGBA
	Background color.NRGBA
	outOfRange int
}

func New(width, height int) *Framebuffer {
	f := &Framebuffer{
		img:        image.NewNRGBA(image.Rect(0, 0, width, height)),
		Background: color.NRGBA{0, 0, 0, 255},
	}
	f.Clear()
	return f
}

func (f *Framebuffer) Bounds() image.Rectangle { return f.img.Rect }

// Image exposes the live buffer; it changes with every frame.
func (f *Framebuffer) Image() *image.NRGBA { return f.img }

// Snapshot returns a copy of the current contents.
func (f *Framebuffer) Snapshot() *image.NRGBA {
	out := image.NewNRGBA(f.img.Rect)
	copy(out.Pix, f.img.Pix)
	return out
}

func (f *Framebuffer) Clear() { f.ClearRect(f.img.Rect) }

// ClearRect paints r with the background color.
func (f *Framebuffer) ClearRect(r image.Rectangle) {
	draw.Draw(f.img, r.Intersect(f.img.Rect), &image.Uniform{f.Background}, image.Point{}, draw.Src)
}

// SetPixel writes one opaque pixel. Writes outside the buffer are dropped.
func (f *Framebuffer) SetPixel(x, y int, c geom.Color) {
	if !(image.Point{x, y}.In(f.img.Rect)) {
		return
	}
	nc, ok := ToNRGBA(c)
	if !ok {
		f.outOfRange++
	}
	f.img.SetNRGBA(x, y, nc)
}

// OutOfRange counts pixels written with a channel that had to be clamped.
func (f *Framebuffer) OutOfRange() int { return f.outOfRange }

// ToNRGBA rounds c to 8 bit channels. ok is false when a channel was NaN or
// outside [0,255] and got clamped.
func ToNRGBA(c geom.Color) (color.NRGBA, bool) {
	r, okR := channel(c.R)
	g, okG := channel(c.G)
	b, okB := channel(c.B)
	return color.NRGBA{r, g, b, 255}, okR && okG && okB
}

func channel(v float64) (uint8, bool) {
	u, err := safecast.Round[uint8](v)
	if err == nil {
		return u, true
	}
	if math.IsNaN(v) || v < 0 {
		return 0, false
	}
	return 255, false
}

// Fit returns the largest rectangle with src's aspect ratio centered in dst.
func Fit(src, dst image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	dw, dh := dst.Dx(), dst.Dy()
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return image.Rectangle{}
	}
	w, h := dw, dw*sh/sw
	if h > dh {
		w, h = dh*sw/sh, dh
	}
	x0 := dst.Min.X + (dw-w)/2
	y0 := dst.Min.Y + (dh-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}

// PresentTo copies the frame into r of dst: a straight block copy when the
// sizes match, nearest neighbour scaling otherwise.
func (f *Framebuffer) PresentTo(dst draw.Image, r image.Rectangle) {
	if r.Size() == f.img.Rect.Size() {
		draw.Draw(dst, r, f.img, f.img.Rect.Min, draw.Src)
		return
	}
	draw.NearestNeighbor.Scale(dst, r, f.img, f.img.Rect, draw.Src, nil)
}

// WritePPM writes the current frame as a binary PPM image.
func (f *Framebuffer) WritePPM(w io.Writer) error {
	if err := pnm.Encode(w, f.img, pnm.PPM); err != nil {
		return fmt.Errorf("encode ppm: %w", err)
	}
	return nil
}
