package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective camera looking down -Z.
type Camera struct {
	ID string
	Transform
	FOV    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32
}

func NewCamera(position mgl32.Vec3, fov, near, far float32, width, height int) *Camera {
	c := &Camera{
		ID:        newNodeID(),
		Transform: Transform{Position: position},
		FOV:       fov,
		Aspect:    1,
		Near:      near,
		Far:       far,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport recomputes the aspect ratio from the viewport size. Empty
// viewports, as reported for minimized windows, are ignored.
func (c *Camera) SetViewport(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	c.Aspect = float32(width) / float32(height)
	return true
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	p := c.Position
	return mgl32.Translate3D(-p.X(), -p.Y(), -p.Z())
}
