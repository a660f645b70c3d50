package geometry

import "github.com/go-gl/mathgl/mgl32"

// SegmentOp is the kind of a path segment.
type SegmentOp uint8

const (
	OpMoveTo SegmentOp = iota
	OpLineTo
	OpQuadTo
	OpCubeTo
)

// Segment is one outline command. Control points come first and the end point
// last: MoveTo and LineTo use Args[0], QuadTo uses Args[0..1], CubeTo uses Args[0..2].
type Segment struct {
	Op   SegmentOp
	Args [3]mgl32.Vec2
}

// Path is a glyph outline made of closed contours.
type Path []Segment

func (p *Path) MoveTo(x, y float32) {
	*p = append(*p, Segment{Op: OpMoveTo, Args: [3]mgl32.Vec2{{x, y}}})
}

func (p *Path) LineTo(x, y float32) {
	*p = append(*p, Segment{Op: OpLineTo, Args: [3]mgl32.Vec2{{x, y}}})
}

func (p *Path) QuadTo(cx, cy, x, y float32) {
	*p = append(*p, Segment{Op: OpQuadTo, Args: [3]mgl32.Vec2{{cx, cy}, {x, y}}})
}

func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	*p = append(*p, Segment{Op: OpCubeTo, Args: [3]mgl32.Vec2{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

// Contours flattens the path into closed polylines. Each curve is replaced by
// curveSegments straight pieces. A closing point that repeats the first one
// is dropped, as are contours with fewer than three points.
func (p Path) Contours(curveSegments int) [][]mgl32.Vec2 {
	if curveSegments < 1 {
		curveSegments = 1
	}
	var out [][]mgl32.Vec2
	var cur []mgl32.Vec2
	flush := func() {
		if n := len(cur); n > 1 && cur[0].ApproxEqual(cur[n-1]) {
			cur = cur[:n-1]
		}
		if len(cur) >= 3 {
			out = append(out, cur)
		}
		cur = nil
	}
	var pen mgl32.Vec2
	for _, s := range p {
		switch s.Op {
		case OpMoveTo:
			flush()
			pen = s.Args[0]
			cur = append(cur, pen)
		case OpLineTo:
			pen = s.Args[0]
			cur = appendDistinct(cur, pen)
		case OpQuadTo:
			p0, c, p1 := pen, s.Args[0], s.Args[1]
			for i := 1; i <= curveSegments; i++ {
				t := float32(i) / float32(curveSegments)
				cur = appendDistinct(cur, mgl32.QuadraticBezierCurve2D(t, p0, c, p1))
			}
			pen = p1
		case OpCubeTo:
			p0, c1, c2, p1 := pen, s.Args[0], s.Args[1], s.Args[2]
			for i := 1; i <= curveSegments; i++ {
				t := float32(i) / float32(curveSegments)
				cur = appendDistinct(cur, mgl32.CubicBezierCurve2D(t, p0, c1, c2, p1))
			}
			pen = p1
		}
	}
	flush()
	return out
}

func appendDistinct(pts []mgl32.Vec2, p mgl32.Vec2) []mgl32.Vec2 {
	if n := len(pts); n > 0 && pts[n-1].ApproxEqual(p) {
		return pts
	}
	return append(pts, p)
}
