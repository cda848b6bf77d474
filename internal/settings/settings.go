// Package settings holds the host side knobs shared by the terminal and window
// front ends: defaults, SOFTCUBE_* environment overrides and command line flags.
package settings

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"fortio.org/log"
	"fortio.org/struct2env"

	"github.com/geofpwhite/softcube/scene"
)

// EnvPrefix is prepended to the upper snake case field names, e.g.
// SOFTCUBE_ORTHONORMAL=true.
const EnvPrefix = "SOFTCUBE_"

type Config struct {
	FPS         float64
	Wire        bool
	Accumulate  bool
	Orthonormal bool
	Depth       bool
	Clamp       bool
	Tilt        float64
	Step        float64
	Mesh        string
	// GIF renders that many frames to GIFPath instead of running interactively.
	GIF     int
	GIFPath string
	// PPM renders a single frame to that path and exits.
	PPM string
}

func Default() Config {
	return Config{
		FPS:     60,
		Tilt:    scene.DefaultTilt,
		Step:    scene.DefaultStep,
		GIFPath: "cube.gif",
	}
}

// TPS is FPS rounded to whole ticks per second, at least 1.
func (c Config) TPS() int {
	return max(1, int(math.Round(c.FPS)))
}

// FromEnv returns the defaults overridden by any SOFTCUBE_* variables.
func FromEnv() (Config, error) {
	cfg := Default()
	if errs := struct2env.SetFromEnv(EnvPrefix, &cfg); len(errs) > 0 {
		return cfg, fmt.Errorf("environment: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// RegisterFlags binds every field to fs using the current values as defaults,
// so flags win over the environment.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.FPS, "fps", c.FPS, "redraws per second")
	fs.BoolVar(&c.Wire, "wire", c.Wire, "draw triangle edges with the line drawer instead of filling")
	fs.BoolVar(&c.Accumulate, "accumulate", c.Accumulate,
		"rotate the previous frame's positions again each frame instead of the base mesh")
	fs.BoolVar(&c.Orthonormal, "orthonormal", c.Orthonormal, "use a real rotation for the X tilt instead of the legacy formula")
	fs.BoolVar(&c.Depth, "depth", c.Depth, "enable the depth buffer")
	fs.BoolVar(&c.Clamp, "clamp", c.Clamp, "clamp interpolated colors to [0,255] before they reach the buffer")
	fs.Float64Var(&c.Tilt, "tilt", c.Tilt, "fixed X tilt in radians")
	fs.Float64Var(&c.Step, "step", c.Step, "Y angle increment per frame in radians")
	fs.StringVar(&c.Mesh, "mesh", c.Mesh, "YAML mesh file to render instead of the built-in cube")
	fs.IntVar(&c.GIF, "gif", c.GIF, "render `N` frames to the gif file and exit")
	fs.StringVar(&c.GIFPath, "gif-out", c.GIFPath, "output path for -gif")
	fs.StringVar(&c.PPM, "ppm", c.PPM, "render one frame to this PPM `file` and exit")
}

// SceneConfig translates the host settings into the renderer's.
func (c Config) SceneConfig() scene.Config {
	sc := scene.DefaultConfig()
	sc.Tilt = c.Tilt
	sc.Step = c.Step
	sc.Accumulate = c.Accumulate
	sc.Orthonormal = c.Orthonormal
	sc.DepthTest = c.Depth
	sc.ClampColors = c.Clamp
	sc.Wireframe = c.Wire
	return sc
}

// LoadMesh returns the configured mesh, the built-in cube by default.
func (c Config) LoadMesh() (scene.Mesh, error) {
	if c.Mesh == "" {
		return scene.Cube(), nil
	}
	m, err := scene.LoadMeshFile(c.Mesh)
	if err != nil {
		return nil, err
	}
	log.Infof("Loaded %d triangles from %s", m.Triangles(), c.Mesh)
	return m, nil
}

// NewScene loads the mesh and builds the scene.
func (c Config) NewScene() (*scene.Scene, error) {
	m, err := c.LoadMesh()
	if err != nil {
		return nil, err
	}
	return scene.New(m, c.SceneConfig())
}
