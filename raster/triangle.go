package raster

import (
	"math"

	"github.com/geofpwhite/softcube/geom"
)

// edges returns the three edge function values of p, each one being the signed
// (doubled) area of the sub-triangle opposite to a, b and c respectively.
func edges(a, b, c, p geom.Vec2) (e0, e1, e2 float64) {
	e0 = c.Sub(b).Cross(p.Sub(b))
	e1 = a.Sub(c).Cross(p.Sub(c))
	e2 = b.Sub(a).Cross(p.Sub(a))
	return e0, e1, e2
}

// Barycentric returns the weights of p relative to triangle abc. They always
// sum to 1 and are all within [0,1] exactly when p is inside. ok is false for
// a zero area triangle, in which case the weights are zero.
func Barycentric(a, b, c, p geom.Vec2) (w0, w1, w2 float64, ok bool) {
	area := b.Sub(a).Cross(c.Sub(a))
	if area == 0 {
		return 0, 0, 0, false
	}
	e0, e1, e2 := edges(a, b, c, p)
	return e0 / area, e1 / area, e2 / area, true
}

// Triangle fills the screen space triangle v0 v1 v2, interpolating vertex
// colors, and returns how many pixels were written. Only triangles with a
// positive signed area (counter-clockwise in a y-up sense, as laid out by
// the mesh) are drawn; clockwise, degenerate and non finite triangles write
// nothing. Pixels on an edge are drawn by every triangle sharing it.
func (r *Rasterizer) Triangle(v0, v1, v2 geom.Vertex) int {
	if !v0.Pos.Finite() || !v1.Pos.Finite() || !v2.Pos.Finite() {
		return 0
	}
	a, b, c := v0.Pos.XY(), v1.Pos.XY(), v2.Pos.XY()
	area := b.Sub(a).Cross(c.Sub(a))
	if area <= 0 {
		return 0
	}
	// clamp while still in float so huge coordinates never overflow int
	fx0 := math.Max(math.Floor(min(a.X, b.X, c.X)), 0)
	fy0 := math.Max(math.Floor(min(a.Y, b.Y, c.Y)), 0)
	fx1 := math.Min(math.Floor(max(a.X, b.X, c.X)), float64(r.Viewport.Width-1))
	fy1 := math.Min(math.Floor(max(a.Y, b.Y, c.Y)), float64(r.Viewport.Height-1))
	if fx0 > fx1 || fy0 > fy1 {
		return 0
	}
	minX, minY, maxX, maxY := int(fx0), int(fy0), int(fx1), int(fy1)

	n := 0
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			e0, e1, e2 := edges(a, b, c, geom.V2(float64(x), float64(y)))
			if e0 < 0 || e1 < 0 || e2 < 0 {
				continue
			}
			w0, w1, w2 := e0/area, e1/area, e2/area
			if r.Depth != nil {
				z := w0*v0.Pos.Z + w1*v1.Pos.Z + w2*v2.Pos.Z
				if !r.Depth.Test(x, y, z) {
					continue
				}
			}
			col := v0.Color.Scale(w0).Add(v1.Color.Scale(w1)).Add(v2.Color.Scale(w2))
			r.plot(x, y, col)
			n++
		}
	}
	return n
}
