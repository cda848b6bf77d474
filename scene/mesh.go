package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/geofpwhite/softcube/geom"
	"gopkg.in/yaml.v3"
)

var ErrMeshLength = errors.New("mesh length is not a multiple of 3")

// Mesh is a triangle list: vertices are consumed in consecutive,
// non-overlapping groups of three.
type Mesh []geom.Vertex

func (m Mesh) Validate() error {
	if len(m)%3 != 0 {
		return fmt.Errorf("%w: %d vertices", ErrMeshLength, len(m))
	}
	return nil
}

func (m Mesh) Triangles() int { return len(m) / 3 }

func (m Mesh) Clone() Mesh { return slices.Clone(m) }

// Colors lists the distinct vertex colors in first-seen order.
func (m Mesh) Colors() []geom.Color {
	var out []geom.Color
	for _, vert := range m {
		if !slices.Contains(out, vert.Color) {
			out = append(out, vert.Color)
		}
	}
	return out
}

type meshFile struct {
	Vertices []vertexFile `yaml:"vertices"`
}

type vertexFile struct {
	Pos   []float64 `yaml:"pos,flow"`
	Color []float64 `yaml:"color,flow"`
}

// LoadMesh decodes a YAML mesh of the form
//
//	vertices:
//	  - {pos: [-0.5, -0.5, -0.5], color: [255, 0, 0]}
//
// and validates it.
func LoadMesh(r io.Reader) (Mesh, error) {
	var f meshFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("parse mesh: %w", err)
	}
	m := make(Mesh, 0, len(f.Vertices))
	for i, vf := range f.Vertices {
		if len(vf.Pos) != 3 || len(vf.Color) != 3 {
			return nil, fmt.Errorf("vertex %d: pos and color need 3 values, got %d and %d", i, len(vf.Pos), len(vf.Color))
		}
		m = append(m, v(vf.Pos[0], vf.Pos[1], vf.Pos[2], vf.Color[0], vf.Color[1], vf.Color[2]))
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func LoadMeshFile(path string) (Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh: %w", err)
	}
	defer f.Close()
	m, err := LoadMesh(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// WriteYAML encodes m in the format LoadMesh reads.
func (m Mesh) WriteYAML(w io.Writer) error {
	f := meshFile{Vertices: make([]vertexFile, 0, len(m))}
	for _, vert := range m {
		f.Vertices = append(f.Vertices, vertexFile{
			Pos:   []float64{vert.Pos.X, vert.Pos.Y, vert.Pos.Z},
			Color: []float64{vert.Color.R, vert.Color.G, vert.Color.B},
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("encode mesh: %w", err)
	}
	return enc.Close()
}
