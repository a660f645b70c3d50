package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const areaEpsilon = 1e-9

// Shape is a filled region: a counter-clockwise outer contour and the
// clockwise holes cut out of it.
type Shape struct {
	Outer []mgl32.Vec2
	Holes [][]mgl32.Vec2
}

// SignedArea is positive for counter-clockwise contours.
func SignedArea(pts []mgl32.Vec2) float32 {
	var a float32
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p[0]*q[1] - q[0]*p[1]
	}
	return a / 2
}

// containsPoint is an even-odd crossing test.
func containsPoint(poly []mgl32.Vec2, p mgl32.Vec2) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a[1] > p[1]) != (b[1] > p[1]) {
			x := a[0] + (p[1]-a[1])*(b[0]-a[0])/(b[1]-a[1])
			if p[0] < x {
				in = !in
			}
		}
	}
	return in
}

// BuildShapes groups flattened contours into shapes. Font formats disagree on
// which winding marks a hole, so nesting decides: a contour enclosed by an odd
// number of others is a hole of the smallest even-depth contour around it.
// The returned contours are reoriented to the Shape convention.
func BuildShapes(contours [][]mgl32.Vec2) []Shape {
	type entry struct {
		pts   []mgl32.Vec2
		area  float32
		depth int
	}
	var es []entry
	for _, c := range contours {
		if len(c) < 3 {
			continue
		}
		a := SignedArea(c)
		if math.Abs(float64(a)) < areaEpsilon {
			continue
		}
		es = append(es, entry{pts: c, area: a})
	}
	for i := range es {
		for j := range es {
			if i != j && containsPoint(es[j].pts, es[i].pts[0]) {
				es[i].depth++
			}
		}
	}

	shapeOf := make(map[int]int)
	var shapes []Shape
	for i, e := range es {
		if e.depth%2 != 0 {
			continue
		}
		shapeOf[i] = len(shapes)
		shapes = append(shapes, Shape{Outer: oriented(e.pts, true)})
	}
	for _, e := range es {
		if e.depth%2 == 0 {
			continue
		}
		parent := -1
		for j, o := range es {
			if o.depth != e.depth-1 || !containsPoint(o.pts, e.pts[0]) {
				continue
			}
			if parent < 0 || abs32(o.area) < abs32(es[parent].area) {
				parent = j
			}
		}
		if parent < 0 {
			continue
		}
		s := &shapes[shapeOf[parent]]
		s.Holes = append(s.Holes, oriented(e.pts, false))
	}
	return shapes
}

// oriented returns pts wound counter-clockwise when ccw is set, clockwise otherwise.
func oriented(pts []mgl32.Vec2, ccw bool) []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(pts))
	copy(out, pts)
	if (SignedArea(out) > 0) != ccw {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
