package raster

import "math"

// DepthBuffer keeps the nearest depth seen per pixel. Larger z is nearer to
// the viewer (the camera looks down -Z).
type DepthBuffer struct {
	width, height int
	z             []float64
}

func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{width: width, height: height, z: make([]float64, width*height)}
	d.Reset()
	return d
}

// Reset forgets every stored depth.
func (d *DepthBuffer) Reset() {
	for i := range d.z {
		d.z[i] = math.Inf(-1)
	}
}

// Test stores z and returns true when it is strictly nearer than what the
// pixel holds. Out of range pixels and NaN depths always fail.
func (d *DepthBuffer) Test(x, y int, z float64) bool {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return false
	}
	i := y*d.width + x
	if !(z > d.z[i]) {
		return false
	}
	d.z[i] = z
	return true
}

// At returns the stored depth, -Inf when nothing was drawn.
func (d *DepthBuffer) At(x, y int) float64 {
	return d.z[y*d.width+x]
}
