package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= eps }

func nearVec3(a, b Vec3) bool { return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) }

func TestVecArithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-4, 0.5, 2)
	if got, want := a.Add(b), V3(-3, 2.5, 5); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), V3(5, 1.5, 1); got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if got, want := a.Scale(2), V3(2, 4, 6); got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}
	// operands are values, not mutated
	if a != V3(1, 2, 3) {
		t.Errorf("operand changed: %v", a)
	}
	if got := V2(3, 4).Len(); got != 5 {
		t.Errorf("Len(3,4) = %v, want 5", got)
	}
	if got := V3(2, 3, 6).Len(); got != 7 {
		t.Errorf("Len(2,3,6) = %v, want 7", got)
	}
	if got := V2(-3, -4).Len(); got < 0 {
		t.Errorf("Len must be non-negative, got %v", got)
	}
}

func TestFromXYAndXY(t *testing.T) {
	v := FromXY(V2(1.5, -2), 7)
	if v != V3(1.5, -2, 7) {
		t.Errorf("FromXY = %v", v)
	}
	if v.XY() != V2(1.5, -2) {
		t.Errorf("XY = %v", v.XY())
	}
}

func TestCross(t *testing.T) {
	if got := V2(1, 0).Cross(V2(0, 1)); got != 1 {
		t.Errorf("x cross y = %v, want 1", got)
	}
	if got := V2(0, 1).Cross(V2(1, 0)); got != -1 {
		t.Errorf("y cross x = %v, want -1", got)
	}
	if got := V2(2, 2).Cross(V2(4, 4)); got != 0 {
		t.Errorf("parallel cross = %v, want 0", got)
	}
}

func TestNaNPropagates(t *testing.T) {
	v := V3(math.NaN(), 0, 0).Add(V3(1, 1, 1))
	if !math.IsNaN(v.X) || v.Finite() {
		t.Errorf("expected NaN to propagate, got %v", v)
	}
	if !V3(1, 2, 3).Finite() {
		t.Error("finite vector reported non-finite")
	}
	if V3(0, math.Inf(-1), 0).Finite() {
		t.Error("infinite vector reported finite")
	}
}

func TestColor(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if mid != RGB(127.5, 127.5, 127.5) {
		t.Errorf("Lerp half = %v", mid)
	}
	if got := RGB(300, -20, math.NaN()).Clamp(); got != RGB(255, 0, 0) {
		t.Errorf("Clamp = %v", got)
	}
	if got := RGB(10, 20, 30).Clamp(); got != RGB(10, 20, 30) {
		t.Errorf("Clamp changed in-range color: %v", got)
	}
	if !near(White.Luma(), 255) {
		t.Errorf("white luma = %v", White.Luma())
	}
}

func TestRotationsAtZero(t *testing.T) {
	pts := []Vec3{V3(0.5, -0.5, 0.5), V3(-1, 2, 3), V3(0, 0, 0)}
	for _, p := range pts {
		if got := RotateY(p, 0); got != p {
			t.Errorf("RotateY(%v, 0) = %v", p, got)
		}
		if got := RotateXLegacy(p, 0); got != p {
			t.Errorf("RotateXLegacy(%v, 0) = %v", p, got)
		}
		if got := RotateX(p, 0); !nearVec3(got, p) {
			t.Errorf("RotateX(%v, 0) = %v", p, got)
		}
	}
}

func TestRotateY(t *testing.T) {
	got := RotateY(V3(1, 2, 0), math.Pi/2)
	if !nearVec3(got, V3(0, 2, -1)) {
		t.Errorf("RotateY quarter turn = %v", got)
	}
	p := V3(0.3, -0.7, 0.5)
	if r := RotateY(p, 1.234); !near(r.Len(), p.Len()) {
		t.Errorf("RotateY changed length %v -> %v", p.Len(), r.Len())
	}
}

func TestRotateX(t *testing.T) {
	got := RotateX(V3(0, 1, 0), math.Pi/2)
	if !nearVec3(got, V3(0, 0, 1)) {
		t.Errorf("RotateX quarter turn = %v", got)
	}
	p := V3(0.3, -0.7, 0.5)
	if r := RotateX(p, 0.3); !near(r.Len(), p.Len()) || !near(r.X, p.X) {
		t.Errorf("RotateX not a rotation: %v -> %v", p, r)
	}
}

func TestRotateXLegacyFormula(t *testing.T) {
	a := 0.3
	s, c := math.Sin(a), math.Cos(a)
	p := V3(0.5, -0.5, 0.5)
	want := V3(p.X+p.Z*s, p.Y*c+p.Z*s, -p.Y*s+p.Z*c)
	if got := RotateXLegacy(p, a); !nearVec3(got, want) {
		t.Errorf("RotateXLegacy = %v, want %v", got, want)
	}
	if nearVec3(RotateXLegacy(p, a), RotateX(p, a)) {
		t.Error("legacy tilt should differ from the orthonormal one")
	}
}

func TestToScreen(t *testing.T) {
	vp := Viewport{Width: 640, Height: 640}
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"center", V2(0, 0), V2(320, 320)},
		{"top left", V2(-1, 1), V2(0, 0)},
		{"bottom right", V2(1, -1), V2(640, 640)},
		{"up is up", V2(0, 0.5), V2(320, 160)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := vp.ToScreen(tc.in); got != tc.want {
				t.Errorf("ToScreen(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestProjectKeepsDepth(t *testing.T) {
	vp := Viewport{Width: 200, Height: 100}
	got := vp.Project(V3(0.5, 0.5, -42))
	if got != V3(150, 25, -42) {
		t.Errorf("Project = %v", got)
	}
	v := vp.ProjectVertex(Vertex{Pos: V3(0, 0, 1), Color: RGB(1, 2, 3)})
	if v.Color != RGB(1, 2, 3) || v.Pos != V3(100, 50, 1) {
		t.Errorf("ProjectVertex = %+v", v)
	}
}

func TestContains(t *testing.T) {
	vp := Viewport{Width: 4, Height: 3}
	if !vp.Contains(0, 0) || !vp.Contains(3, 2) {
		t.Error("corners should be inside")
	}
	if vp.Contains(4, 0) || vp.Contains(0, 3) || vp.Contains(-1, 1) {
		t.Error("outside points reported inside")
	}
}
