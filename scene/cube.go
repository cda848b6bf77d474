package scene

import (
	"slices"

	"github.com/geofpwhite/softcube/geom"
)

func v(x, y, z, r, g, b float64) geom.Vertex {
	return geom.Vertex{Pos: geom.V3(x, y, z), Color: geom.RGB(r, g, b)}
}

// cube is the default unit cube, 12 triangles with one solid color per pair.
// Winding and order are part of the picture: triangles that land clockwise on
// screen are skipped by the rasterizer and later triangles paint over earlier
// ones.
var cube = [36]geom.Vertex{
	v(-0.5, -0.5, -0.5, 255, 0, 0), // left - red
	v(-0.5, -0.5, 0.5, 255, 0, 0),
	v(-0.5, 0.5, 0.5, 255, 0, 0),

	v(0.5, 0.5, -0.5, 0, 0, 255), // back - blue
	v(-0.5, -0.5, -0.5, 0, 0, 255),
	v(-0.5, 0.5, -0.5, 0, 0, 255),

	v(0.5, -0.5, 0.5, 0, 255, 0), // bottom - green
	v(-0.5, -0.5, -0.5, 0, 255, 0),
	v(0.5, -0.5, -0.5, 0, 255, 0),

	v(0.5, 0.5, -0.5, 0, 0, 255),
	v(0.5, -0.5, -0.5, 0, 0, 255),
	v(-0.5, -0.5, -0.5, 0, 0, 255),

	v(-0.5, -0.5, -0.5, 255, 0, 0),
	v(-0.5, 0.5, 0.5, 255, 0, 0),
	v(-0.5, 0.5, -0.5, 255, 0, 0),

	v(0.5, -0.5, 0.5, 0, 255, 0),
	v(-0.5, -0.5, 0.5, 0, 255, 0),
	v(-0.5, -0.5, -0.5, 0, 255, 0),

	v(-0.5, 0.5, 0.5, 255, 255, 0), // front - yellow
	v(-0.5, -0.5, 0.5, 255, 255, 0),
	v(0.5, -0.5, 0.5, 255, 255, 0),

	v(0.5, 0.5, 0.5, 0, 255, 255), // right - cyan
	v(0.5, -0.5, -0.5, 0, 255, 255),
	v(0.5, 0.5, -0.5, 0, 255, 255),

	v(0.5, -0.5, -0.5, 0, 255, 255),
	v(0.5, 0.5, 0.5, 0, 255, 255),
	v(0.5, -0.5, 0.5, 0, 255, 255),

	v(0.5, 0.5, 0.5, 255, 0, 255), // top - magenta
	v(0.5, 0.5, -0.5, 255, 0, 255),
	v(-0.5, 0.5, -0.5, 255, 0, 255),

	v(0.5, 0.5, 0.5, 255, 0, 255),
	v(-0.5, 0.5, -0.5, 255, 0, 255),
	v(-0.5, 0.5, 0.5, 255, 0, 255),

	v(0.5, 0.5, 0.5, 255, 255, 0),
	v(-0.5, 0.5, 0.5, 255, 255, 0),
	v(0.5, -0.5, 0.5, 255, 255, 0),
}

// Cube returns a fresh copy of the default cube mesh.
func Cube() Mesh {
	return slices.Clone(cube[:])
}
