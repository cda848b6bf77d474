package raster

import (
	"math"

	"github.com/geofpwhite/softcube/geom"
)

// Line draws from (x0,y0) toward (x1,y1) blending c0 into c1. It steps once
// per pixel along the major axis, max(|dx|,|dy|) times, so the end point
// itself is not drawn. A zero length line draws its single start pixel.
// Only the steps that can land inside the viewport are walked, so the cost is
// bounded by the viewport size however long the segment is. The return value
// counts the pixels actually written. Lines never consult the depth buffer.
func (r *Rasterizer) Line(x0, y0, x1, y1 int, c0, c1 geom.Color) int {
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		if !r.Viewport.Contains(x0, y0) {
			return 0
		}
		r.plot(x0, y0, c0)
		return 1
	}
	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)

	xLo, xHi := visibleSteps(x0, xInc, r.Viewport.Width, steps)
	yLo, yHi := visibleSteps(y0, yInc, r.Viewport.Height, steps)
	lo, hi := max(xLo, yLo), min(xHi, yHi)

	n := 0
	for i := lo; i < hi; i++ {
		x := x0 + int(math.Round(float64(i)*xInc))
		y := y0 + int(math.Round(float64(i)*yInc))
		if !r.Viewport.Contains(x, y) {
			continue
		}
		r.plot(x, y, c0.Lerp(c1, float64(i)/float64(steps)))
		n++
	}
	return n
}

// visibleSteps returns the step range [lo,hi) within [0,steps) for which
// start+round(i*inc) may fall in [0,size). The range is widened by a step on
// each side; the caller still checks every pixel.
func visibleSteps(start int, inc float64, size, steps int) (int, int) {
	if inc == 0 {
		if start < 0 || start >= size {
			return 0, 0
		}
		return 0, steps
	}
	a := (float64(-start) - 0.5) / inc
	b := (float64(size-1-start) + 0.5) / inc
	if a > b {
		a, b = b, a
	}
	// clamp in float so far away segments never overflow int
	lo := math.Max(math.Floor(a)-1, 0)
	hi := math.Min(math.Ceil(b)+2, float64(steps))
	if lo >= hi {
		return 0, 0
	}
	return int(lo), int(hi)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
