package geometry

import (
	"math"
	"slices"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

const crossEpsilon = 1e-12

func cross2(o, a, b mgl32.Vec2) float32 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

// Triangulate fills a shape by ear clipping. Holes are first joined to the
// outer contour through bridge edges so the clipper sees one weakly simple
// ring. The returned points are the outer contour followed by every hole in
// order; triangles index into them and wind counter-clockwise.
func Triangulate(s Shape) ([]mgl32.Vec2, []uint32) {
	pts := slices.Clone(s.Outer)
	ring := make([]int, len(s.Outer))
	for i := range ring {
		ring[i] = i
	}

	holes := make([][]int, 0, len(s.Holes))
	for _, h := range s.Holes {
		idx := make([]int, len(h))
		for i := range h {
			idx[i] = len(pts)
			pts = append(pts, h[i])
		}
		holes = append(holes, idx)
	}
	// rightmost holes first, so later bridges can cross to earlier holes
	sort.SliceStable(holes, func(i, j int) bool {
		return maxX(pts, holes[i]) > maxX(pts, holes[j])
	})
	for _, h := range holes {
		ring = bridgeHole(pts, ring, h)
	}
	return pts, clipEars(pts, ring)
}

func maxX(pts []mgl32.Vec2, idx []int) float32 {
	m := float32(-math.MaxFloat32)
	for _, i := range idx {
		m = max(m, pts[i][0])
	}
	return m
}

// bridgeHole splices hole into ring through a pair of coincident edges
// between the hole's rightmost vertex and a ring vertex it can see.
func bridgeHole(pts []mgl32.Vec2, ring, hole []int) []int {
	mi := 0
	for i, idx := range hole {
		if pts[idx][0] > pts[hole[mi]][0] {
			mi = i
		}
	}
	m := pts[hole[mi]]

	n := len(ring)
	best := -1
	hitX := float32(math.MaxFloat32)
	for i := range ring {
		a, b := pts[ring[i]], pts[ring[(i+1)%n]]
		if (a[1] > m[1]) == (b[1] > m[1]) {
			continue
		}
		x := a[0] + (m[1]-a[1])*(b[0]-a[0])/(b[1]-a[1])
		if x < m[0] || x >= hitX {
			continue
		}
		hitX = x
		if a[0] > b[0] {
			best = i
		} else {
			best = (i + 1) % n
		}
	}

	if best < 0 {
		best = nearestVertex(pts, ring, m)
	} else {
		hit := mgl32.Vec2{hitX, m[1]}
		p := pts[ring[best]]
		bestAngle := angleFrom(m, p)
		bestDist := p.Sub(m).Len()
		for i, idx := range ring {
			v := pts[idx]
			if i == best || v[0] < m[0] || v.ApproxEqual(p) {
				continue
			}
			if !inTriangleInclusive(v, m, hit, p) || !locallyInside(pts, ring, i, m) {
				continue
			}
			ang, d := angleFrom(m, v), v.Sub(m).Len()
			if ang < bestAngle || (ang == bestAngle && d < bestDist) {
				best, bestAngle, bestDist = i, ang, d
			}
		}
	}

	out := make([]int, 0, len(ring)+len(hole)+2)
	out = append(out, ring[:best+1]...)
	for k := 0; k <= len(hole); k++ {
		out = append(out, hole[(mi+k)%len(hole)])
	}
	out = append(out, ring[best])
	out = append(out, ring[best+1:]...)
	return out
}

func nearestVertex(pts []mgl32.Vec2, ring []int, m mgl32.Vec2) int {
	best, bestD := 0, float32(math.MaxFloat32)
	for i, idx := range ring {
		if d := pts[idx].Sub(m).Len(); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

func angleFrom(o, p mgl32.Vec2) float32 {
	return float32(math.Abs(math.Atan2(float64(p[1]-o[1]), float64(p[0]-o[0]))))
}

func inTriangleInclusive(p, a, b, c mgl32.Vec2) bool {
	d1, d2, d3 := cross2(a, b, p), cross2(b, c, p), cross2(c, a, p)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

// locallyInside reports whether m lies inside the interior angle of the ring
// at position i.
func locallyInside(pts []mgl32.Vec2, ring []int, i int, m mgl32.Vec2) bool {
	n := len(ring)
	u, v, w := pts[ring[(i+n-1)%n]], pts[ring[i]], pts[ring[(i+1)%n]]
	if cross2(u, v, w) >= 0 {
		return cross2(v, w, m) >= 0 && cross2(u, v, m) >= 0
	}
	return cross2(v, w, m) >= 0 || cross2(u, v, m) >= 0
}

// clipEars triangulates a counter-clockwise ring. Collinear vertices are
// dropped without emitting a triangle; if no ear can be found the ring is
// degenerate and the first convex vertex is clipped so the loop terminates.
func clipEars(pts []mgl32.Vec2, ring []int) []uint32 {
	idx := slices.Clone(ring)
	tris := make([]uint32, 0, 3*len(idx))
	for len(idx) > 3 {
		n := len(idx)
		clipped := false
		for i := 0; i < n && !clipped; i++ {
			a, b, c := idx[(i+n-1)%n], idx[i], idx[(i+1)%n]
			cr := cross2(pts[a], pts[b], pts[c])
			if math.Abs(float64(cr)) <= crossEpsilon {
				idx = slices.Delete(idx, i, i+1)
				clipped = true
				continue
			}
			if cr < 0 || !isEar(pts, idx, a, b, c) {
				continue
			}
			tris = append(tris, uint32(a), uint32(b), uint32(c))
			idx = slices.Delete(idx, i, i+1)
			clipped = true
		}
		if clipped {
			continue
		}
		forced := false
		for i := 0; i < n; i++ {
			a, b, c := idx[(i+n-1)%n], idx[i], idx[(i+1)%n]
			if cross2(pts[a], pts[b], pts[c]) > 0 {
				tris = append(tris, uint32(a), uint32(b), uint32(c))
				idx = slices.Delete(idx, i, i+1)
				forced = true
				break
			}
		}
		if !forced {
			return tris
		}
	}
	if len(idx) == 3 && cross2(pts[idx[0]], pts[idx[1]], pts[idx[2]]) > crossEpsilon {
		tris = append(tris, uint32(idx[0]), uint32(idx[1]), uint32(idx[2]))
	}
	return tris
}

// isEar rejects the triangle when any reflex or collinear vertex touches it.
// Convex vertices cannot block an ear on their own, and counting boundary
// hits keeps diagonals from running through vertices on straight edges.
func isEar(pts []mgl32.Vec2, idx []int, a, b, c int) bool {
	pa, pb, pc := pts[a], pts[b], pts[c]
	n := len(idx)
	for i, k := range idx {
		if k == a || k == b || k == c {
			continue
		}
		p := pts[k]
		if p.ApproxEqual(pa) || p.ApproxEqual(pb) || p.ApproxEqual(pc) {
			continue
		}
		if cross2(pts[idx[(i+n-1)%n]], p, pts[idx[(i+1)%n]]) > 0 {
			continue
		}
		if inTriangleInclusive(p, pa, pb, pc) {
			return false
		}
	}
	return true
}
