package geom

// Viewport maps normalized device coordinates in [-1,1]² onto a Width×Height
// pixel grid with the origin at the top left. The mapping is orthographic:
// depth is carried along but never divides x or y.
type Viewport struct {
	Width, Height int
}

// ToScreen converts a normalized point to pixel space, flipping Y so that +Y
// is up on screen.
func (vp Viewport) ToScreen(p Vec2) Vec2 {
	return Vec2{
		X: float64(vp.Width) * (1 + p.X) / 2,
		Y: float64(vp.Height) * (1 - p.Y) / 2,
	}
}

// Project is ToScreen on the XY plane with Z passed through unmodified.
func (vp Viewport) Project(v Vec3) Vec3 {
	return FromXY(vp.ToScreen(v.XY()), v.Z)
}

// ProjectVertex projects the position and keeps the color.
func (vp Viewport) ProjectVertex(v Vertex) Vertex {
	return Vertex{Pos: vp.Project(v.Pos), Color: v.Color}
}

func (vp Viewport) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < vp.Width && y < vp.Height
}
