package geom

import "math"

// Color is a linear RGB triple with channels nominally in [0,255]. Blends can
// produce values outside that range (or NaN); nothing here clamps unless
// Clamp is called explicitly.
type Color struct {
	R, G, B float64
}

func RGB(r, g, b float64) Color { return Color{r, g, b} }

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

func (c Color) Add(o Color) Color { return Color{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c Color) Sub(o Color) Color { return Color{c.R - o.R, c.G - o.G, c.B - o.B} }

func (c Color) Scale(s float64) Color { return Color{c.R * s, c.G * s, c.B * s} }

// Lerp interpolate linear between c and to by t.
func (c Color) Lerp(to Color, t float64) Color { return c.Add(to.Sub(c).Scale(t)) }

// Clamp maps every channel into [0,255], NaN becoming 0.
func (c Color) Clamp() Color {
	return Color{clampChannel(c.R), clampChannel(c.G), clampChannel(c.B)}
}

// Luma is the Rec. 601 brightness of c.
func (c Color) Luma() float64 { return 0.299*c.R + 0.587*c.G + 0.114*c.B }

func clampChannel(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return max(0, min(255, v))
}
