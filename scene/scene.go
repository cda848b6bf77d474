// Package scene drives the per-frame pipeline: rotate the mesh, project it to
// the screen and rasterize every triangle into a target.
package scene

import (
	"errors"
	"fmt"

	"fortio.org/log"
	"fortio.org/safecast"

	"github.com/geofpwhite/softcube/geom"
	"github.com/geofpwhite/softcube/raster"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 640
	// DefaultTilt is the fixed rotation around X applied after the spin.
	DefaultTilt = 0.3
	// DefaultStep is how much the Y angle advances per frame.
	DefaultStep = 0.001
)

// Target is what a frame is rendered into.
type Target interface {
	raster.Sink
	Clear()
}

type Config struct {
	Viewport geom.Viewport
	Tilt     float64
	Step     float64
	// StartAngle is the Y angle of the first frame.
	StartAngle float64
	// Accumulate rotates the previous frame's positions again every frame
	// instead of rotating the base mesh by the absolute angle. The spin then
	// speeds up quadratically and the legacy tilt compounds.
	Accumulate bool
	// Orthonormal uses a real X rotation instead of the legacy tilt formula.
	Orthonormal bool
	// DepthTest enables a z-buffer; otherwise triangles paint in mesh order.
	DepthTest   bool
	ClampColors bool
	// Wireframe draws triangle edges with the line drawer instead of filling.
	Wireframe bool
}

func DefaultConfig() Config {
	return Config{
		Viewport: geom.Viewport{Width: ScreenWidth, Height: ScreenHeight},
		Tilt:     DefaultTilt,
		Step:     DefaultStep,
	}
}

// RotateX returns the X rotation the config selects.
func (c Config) RotateX() geom.RotateFunc {
	if c.Orthonormal {
		return geom.RotateX
	}
	return geom.RotateXLegacy
}

// Stats describes the last rendered frame.
type Stats struct {
	Triangles int // triangles in the mesh
	Drawn     int // triangles that wrote at least one pixel
	Pixels    int // pixel writes
}

// Scene owns the mesh and the rotation state. It is not safe for concurrent
// use; frames are expected to come from a single redraw loop.
type Scene struct {
	cfg    Config
	base   Mesh
	pos    Mesh
	rotX   geom.RotateFunc
	depth  *raster.DepthBuffer
	frames uint64
	stats  Stats
}

func New(mesh Mesh, cfg Config) (*Scene, error) {
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	if cfg.Viewport.Width <= 0 || cfg.Viewport.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", cfg.Viewport.Width, cfg.Viewport.Height)
	}
	if len(mesh) == 0 {
		return nil, errors.New("empty mesh")
	}
	s := &Scene{
		cfg:  cfg,
		base: mesh.Clone(),
		pos:  mesh.Clone(),
		rotX: cfg.RotateX(),
	}
	if cfg.DepthTest {
		s.depth = raster.NewDepthBuffer(cfg.Viewport.Width, cfg.Viewport.Height)
	}
	log.S(log.Verbose, "scene created",
		log.Attr("triangles", mesh.Triangles()),
		log.Attr("width", cfg.Viewport.Width), log.Attr("height", cfg.Viewport.Height),
		log.Attr("accumulate", cfg.Accumulate), log.Attr("orthonormal", cfg.Orthonormal),
		log.Attr("depth", cfg.DepthTest), log.Attr("wireframe", cfg.Wireframe))
	return s, nil
}

func (s *Scene) Config() Config { return s.cfg }

// Angle is the Y angle the next frame will use: StartAngle + Frames()*Step.
// It is derived from the frame count so it never drifts.
func (s *Scene) Angle() float64 {
	return s.cfg.StartAngle + float64(s.frames)*s.cfg.Step
}

func (s *Scene) Frames() uint64 { return s.frames }

func (s *Scene) Stats() Stats { return s.stats }

// Positions returns a copy of the vertices as transformed by the last frame
// (the base mesh before the first frame).
func (s *Scene) Positions() Mesh { return s.pos.Clone() }

// Base returns a copy of the untransformed mesh.
func (s *Scene) Base() Mesh { return s.base.Clone() }

// RenderFrame clears dst, draws the mesh at the current angle and advances
// the angle by one step.
func (s *Scene) RenderFrame(dst Target) {
	dst.Clear()
	if s.depth != nil {
		s.depth.Reset()
	}
	src := s.base
	if s.cfg.Accumulate {
		src = s.pos
	}
	transformInto(s.pos, src, s.Angle(), s.cfg.Tilt, s.rotX)

	vp := s.cfg.Viewport
	r := raster.Rasterizer{Viewport: vp, Sink: dst, Depth: s.depth, Clamp: s.cfg.ClampColors}
	st := Stats{Triangles: s.pos.Triangles()}
	for i := 0; i+2 < len(s.pos); i += 3 {
		a := vp.ProjectVertex(s.pos[i])
		b := vp.ProjectVertex(s.pos[i+1])
		c := vp.ProjectVertex(s.pos[i+2])
		var n int
		if s.cfg.Wireframe {
			n = outline(&r, a, b, c)
		} else {
			n = r.Triangle(a, b, c)
		}
		if n > 0 {
			st.Drawn++
		}
		st.Pixels += n
	}
	s.stats = st
	log.LogVf("frame %d angle %.4f: %d/%d triangles, %d pixels", s.frames, s.Angle(), st.Drawn, st.Triangles, st.Pixels)
	s.frames++
}

// Transform returns mesh rotated around Y by angle and then around X by tilt.
// mesh is left untouched.
func Transform(mesh Mesh, angle, tilt float64, rotX geom.RotateFunc) Mesh {
	out := make(Mesh, len(mesh))
	transformInto(out, mesh, angle, tilt, rotX)
	return out
}

// transformInto allows dst and src to be the same slice.
func transformInto(dst, src Mesh, angle, tilt float64, rotX geom.RotateFunc) {
	for i, vert := range src {
		dst[i] = geom.Vertex{
			Pos:   rotX(geom.RotateY(vert.Pos, angle), tilt),
			Color: vert.Color,
		}
	}
}

func outline(r *raster.Rasterizer, a, b, c geom.Vertex) int {
	return edge(r, a, b) + edge(r, b, c) + edge(r, c, a)
}

func edge(r *raster.Rasterizer, from, to geom.Vertex) int {
	x0, err0 := safecast.Round[int](from.Pos.X)
	y0, err1 := safecast.Round[int](from.Pos.Y)
	x1, err2 := safecast.Round[int](to.Pos.X)
	y1, err3 := safecast.Round[int](to.Pos.Y)
	if err := errors.Join(err0, err1, err2, err3); err != nil {
		log.Debugf("skipping edge %v -> %v: %v", from.Pos, to.Pos, err)
		return 0
	}
	return r.Line(x0, y0, x1, y1, from.Color, to.Color)
}
