// Package geometry builds the CPU-side meshes of the scene: the glow cube,
// extruded text and the unlit helper line sets.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved layout of Mesh.Interleave: position then normal.
const FloatsPerVertex = 6

// Mesh is an indexed triangle list in object space. Triangles wind
// counter-clockwise when seen from the side their normals point to.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
}

func (m *Mesh) addVertex(p, n mgl32.Vec3) uint32 {
	m.Positions = append(m.Positions, p)
	m.Normals = append(m.Normals, n)
	return uint32(len(m.Positions) - 1)
}

// Append merges o into m.
func (m *Mesh) Append(o *Mesh) {
	base := uint32(len(m.Positions))
	m.Positions = append(m.Positions, o.Positions...)
	m.Normals = append(m.Normals, o.Normals...)
	for _, i := range o.Indices {
		m.Indices = append(m.Indices, base+i)
	}
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Interleave packs positions and normals for a single vertex buffer.
func (m *Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Positions)*FloatsPerVertex)
	for i, p := range m.Positions {
		n := m.Normals[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out
}

// Bounds returns the axis aligned box around all vertices.
// An empty mesh yields two zero vectors.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return lo, hi
	}
	lo = mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	hi = mgl32.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for _, p := range m.Positions {
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], p[k])
			hi[k] = max(hi[k], p[k])
		}
	}
	return lo, hi
}

// Box returns an axis aligned cube of edge length size centered on the origin,
// with one flat-shaded quad per face.
func Box(size float32) *Mesh {
	h := size / 2
	faces := []struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}
	m := &Mesh{}
	for _, f := range faces {
		c := f.n.Mul(h)
		u := f.u.Mul(h)
		v := f.v.Mul(h)
		a := m.addVertex(c.Sub(u).Sub(v), f.n)
		b := m.addVertex(c.Add(u).Sub(v), f.n)
		cc := m.addVertex(c.Add(u).Add(v), f.n)
		d := m.addVertex(c.Sub(u).Add(v), f.n)
		m.Indices = append(m.Indices, a, b, cc, a, cc, d)
	}
	return m
}
