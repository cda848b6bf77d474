// Package geom holds the small vector, color and transform types used by the
// software rasterizer. All values are plain structs passed by value; nothing
// here allocates or mutates its operands.
package geom

import "math"

type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{x, y} }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Len returns the euclidean length of a.
func (a Vec2) Len() float64 { return math.Sqrt(a.X*a.X + a.Y*a.Y) }

// Cross is the 2D pseudo cross product (z of the 3D cross product). It is
// positive when b is counter-clockwise from a in a y-up frame.
func (a Vec2) Cross(b Vec2) float64 { return a.X*b.Y - b.X*a.Y }

type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// FromXY builds a Vec3 from a 2D point and a depth.
func FromXY(p Vec2, z float64) Vec3 { return Vec3{p.X, p.Y, z} }

// XY drops the Z component.
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Finite reports whether no component is NaN or infinite.
func (v Vec3) Finite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Vertex pairs a position with the color it carries through the pipeline.
type Vertex struct {
	Pos   Vec3
	Color Color
}
