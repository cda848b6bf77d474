// Package raster fills triangles and draws lines into a pixel sink using
// edge functions and barycentric color interpolation.
package raster

import "github.com/geofpwhite/softcube/geom"

// Sink receives individual pixel writes. Implementations decide what to do with
// channels outside [0,255].
type Sink interface {
	SetPixel(x, y int, c geom.Color)
}

// Rasterizer draws primitives already projected to screen space.
type Rasterizer struct {
	Viewport geom.Viewport
	Sink     Sink
	// Depth enables per-pixel depth testing for triangles when non nil.
	Depth *DepthBuffer
	// Clamp limits colors to [0,255] before they reach the sink.
	Clamp bool
}

func New(vp geom.Viewport, sink Sink) *Rasterizer {
	return &Rasterizer{Viewport: vp, Sink: sink}
}

func (r *Rasterizer) plot(x, y int, c geom.Color) {
	if r.Clamp {
		c = c.Clamp()
	}
	r.Sink.SetPixel(x, y, c)
}
