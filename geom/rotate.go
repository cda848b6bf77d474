package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotateFunc rotates a point around a fixed axis by angle radians.
type RotateFunc func(v Vec3, angle float64) Vec3

// RotateY rotates v around the Y axis.
func RotateY(v Vec3, angle float64) Vec3 {
	cosa, sina := math.Cos(angle), math.Sin(angle)
	x := v.X*cosa + v.Z*sina
	z := -v.X*sina + v.Z*cosa
	return Vec3{x, v.Y, z}
}

// RotateXLegacy is the tilt the cube has always been drawn with. It is not a
// rotation: x picks up z·sin(angle) and y mixes in +z·sin(angle) where a real
// rotation would subtract it, so lengths are not preserved. Kept so frames
// look the same as before; use RotateX for the orthonormal version.
func RotateXLegacy(v Vec3, angle float64) Vec3 {
	cosa, sina := math.Cos(angle), math.Sin(angle)
	x := v.X + v.Z*sina
	y := v.Y*cosa + v.Z*sina
	z := -v.Y*sina + v.Z*cosa
	return Vec3{x, y, z}
}

// RotateX rotates v around the X axis (right handed, y toward z).
func RotateX(v Vec3, angle float64) Vec3 {
	r := mgl64.Rotate3DX(angle).Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vec3{r[0], r[1], r[2]}
}
