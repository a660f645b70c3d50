package scene

import (
	"glyphglow/internal/geometry"
	"glyphglow/internal/shading"

	"github.com/go-gl/mathgl/mgl32"
)

// GlowCube is the light-carrying box at the center of the scene.
type GlowCube struct {
	ID string
	Transform
	Size     float32
	Material shading.GlowMaterial
	Mesh     *geometry.Mesh
}

// PointLight sits wherever its target was at the last Sync.
type PointLight struct {
	ID string
	Transform
	Color     mgl32.Vec3
	Intensity float32
	Range     float32

	target *Transform
}

// Follow attaches the light to t.
func (l *PointLight) Follow(t *Transform) {
	l.target = t
}

// Sync copies the target position into the light.
func (l *PointLight) Sync() {
	if l.target != nil {
		l.Position = l.target.Position
	}
}

// Helper is a static, unlit line set such as the axes or the floor grid.
type Helper struct {
	ID    string
	Name  string
	Lines *geometry.Lines
}
