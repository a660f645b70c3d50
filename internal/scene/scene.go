// Package scene is the scene graph store: one glow cube, the point light
// attached to it, the camera, optional helpers and, once the font has
// arrived, the text glyphs. It holds no GPU state.
package scene

import (
	"errors"

	"glyphglow/internal/geometry"
	"glyphglow/internal/shading"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrGlyphsInstalled is returned when glyphs are added a second time.
var ErrGlyphsInstalled = errors.New("glyphs already installed")

// Grid line colors.
var (
	gridCenterColor = shading.HexColor(0x444444)
	gridLineColor   = shading.HexColor(0x888888)
)

type CameraOptions struct {
	Position  mgl32.Vec3
	FOV       float32
	Near, Far float32
	Width     int
	Height    int
}

type CubeOptions struct {
	Size    float32
	Color   mgl32.Vec3
	Falloff float32
}

type LightOptions struct {
	Color     mgl32.Vec3
	Intensity float32
	Range     float32
}

// HelperOptions disables a helper when its size is zero.
type HelperOptions struct {
	AxesSize      float32
	GridSize      float32
	GridDivisions int
}

type Options struct {
	Camera  CameraOptions
	Cube    CubeOptions
	Light   LightOptions
	Helpers HelperOptions
}

type Scene struct {
	Cube    *GlowCube
	Light   *PointLight
	Camera  *Camera
	Helpers []*Helper

	glyphs []*TextGlyph
}

func New(o Options) *Scene {
	cube := &GlowCube{
		ID:   newNodeID(),
		Size: o.Cube.Size,
		Material: shading.GlowMaterial{
			Color:       o.Cube.Color,
			Falloff:     o.Cube.Falloff,
			Transparent: true,
		},
		Mesh: geometry.Box(o.Cube.Size),
	}
	light := &PointLight{
		ID:        newNodeID(),
		Color:     o.Light.Color,
		Intensity: o.Light.Intensity,
		Range:     o.Light.Range,
	}
	light.Follow(&cube.Transform)
	light.Sync()

	s := &Scene{
		Cube:   cube,
		Light:  light,
		Camera: NewCamera(o.Camera.Position, o.Camera.FOV, o.Camera.Near, o.Camera.Far, o.Camera.Width, o.Camera.Height),
	}
	if o.Helpers.AxesSize > 0 {
		s.Helpers = append(s.Helpers, &Helper{ID: newNodeID(), Name: "axes", Lines: geometry.Axes(o.Helpers.AxesSize)})
	}
	if o.Helpers.GridSize > 0 && o.Helpers.GridDivisions > 0 {
		grid := geometry.Grid(o.Helpers.GridSize, o.Helpers.GridDivisions, gridCenterColor, gridLineColor)
		s.Helpers = append(s.Helpers, &Helper{ID: newNodeID(), Name: "grid", Lines: grid})
	}
	return s
}

// Glyphs returns the installed glyphs; empty until the font has loaded.
func (s *Scene) Glyphs() []*TextGlyph {
	out := make([]*TextGlyph, len(s.glyphs))
	copy(out, s.glyphs)
	return out
}

// AddGlyphs installs the glyphs. It succeeds once.
func (s *Scene) AddGlyphs(gs ...*TextGlyph) error {
	if len(s.glyphs) > 0 {
		return ErrGlyphsInstalled
	}
	s.glyphs = append(s.glyphs, gs...)
	return nil
}

// SyncLight moves the light onto the cube. Called once per frame before drawing.
func (s *Scene) SyncLight() {
	s.Light.Sync()
}

// Resize keeps the camera aspect in step with the viewport.
func (s *Scene) Resize(width, height int) bool {
	return s.Camera.SetViewport(width, height)
}

// MoveCube shifts the cube vertically. No bounds apply.
func (s *Scene) MoveCube(dy float32) {
	s.Cube.Translate(mgl32.Vec3{0, dy, 0})
}

// MoveCamera shifts the camera along X. No bounds apply.
func (s *Scene) MoveCamera(dx float32) {
	s.Camera.Translate(mgl32.Vec3{dx, 0, 0})
}
