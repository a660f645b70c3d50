package geometry

import "github.com/go-gl/mathgl/mgl32"

// FloatsPerLineVertex is the interleaved layout of Lines.Interleave: position then color.
const FloatsPerLineVertex = 6

// Lines is a GL_LINES vertex list with one color per vertex.
type Lines struct {
	Positions []mgl32.Vec3
	Colors    []mgl32.Vec3
}

func (l *Lines) add(a, b, ca, cb mgl32.Vec3) {
	l.Positions = append(l.Positions, a, b)
	l.Colors = append(l.Colors, ca, cb)
}

// Interleave packs positions and colors for a single vertex buffer.
func (l *Lines) Interleave() []float32 {
	out := make([]float32, 0, len(l.Positions)*FloatsPerLineVertex)
	for i, p := range l.Positions {
		c := l.Colors[i]
		out = append(out, p[0], p[1], p[2], c[0], c[1], c[2])
	}
	return out
}

// Axes draws the X, Y and Z axes from the origin, each fading from its pure
// color towards a lighter tint at its tip.
func Axes(size float32) *Lines {
	l := &Lines{}
	l.add(mgl32.Vec3{}, mgl32.Vec3{size, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0.6, 0})
	l.add(mgl32.Vec3{}, mgl32.Vec3{0, size, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0.6, 1, 0})
	l.add(mgl32.Vec3{}, mgl32.Vec3{0, 0, size}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0.6, 1})
	return l
}

// Grid draws a square grid of side size in the XZ plane, with divisions cells
// per side. The two lines through the origin use center, all others line.
func Grid(size float32, divisions int, center, line mgl32.Vec3) *Lines {
	l := &Lines{}
	half := size / 2
	mid := divisions / 2
	for i := 0; i <= divisions; i++ {
		k := -half + size*float32(i)/float32(divisions)
		c := line
		if i == mid && divisions%2 == 0 {
			c = center
		}
		l.add(mgl32.Vec3{-half, 0, k}, mgl32.Vec3{half, 0, k}, c, c)
		l.add(mgl32.Vec3{k, 0, -half}, mgl32.Vec3{k, 0, half}, c, c)
	}
	return l
}
