package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Transform positions exactly one node.
type Transform struct {
	Position mgl32.Vec3
}

// Translate moves the node by d.
func (t *Transform) Translate(d mgl32.Vec3) {
	t.Position = t.Position.Add(d)
}

// ModelMatrix returns the object-to-world matrix.
func (t *Transform) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
}

func newNodeID() string {
	return uuid.NewString()
}
