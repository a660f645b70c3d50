package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Glyph is one character outline in em units: a font size of 1 maps the em
// square onto one world unit. Y points up.
type Glyph struct {
	Path    Path
	Advance float32
}

// GlyphSource resolves characters to outlines.
type GlyphSource interface {
	Glyph(r rune) (Glyph, error)
}

// TextOptions control text extrusion.
type TextOptions struct {
	Size          float32 // em height in world units
	Depth         float32 // extrusion along +Z
	CurveSegments int     // straight pieces per outline curve
}

// ErrEmptyText is returned for text without any characters.
var ErrEmptyText = errors.New("empty text")

// Text lays out text on one line starting at the origin and extrudes every
// character from z=0 to z=Depth. Characters without contours, such as a
// space, only advance the pen.
func Text(src GlyphSource, text string, o TextOptions) (*Mesh, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	m := &Mesh{}
	var penX float32
	for _, r := range text {
		g, err := src.Glyph(r)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", r, err)
		}
		contours := g.Path.Contours(o.CurveSegments)
		for _, c := range contours {
			for i := range c {
				c[i] = mgl32.Vec2{c[i][0]*o.Size + penX, c[i][1] * o.Size}
			}
		}
		for _, s := range BuildShapes(contours) {
			m.Append(Extrude(s, o.Depth))
		}
		penX += g.Advance * o.Size
	}
	return m, nil
}

// Extrude turns a flat shape into a solid: a front cap at z=depth, a back cap
// at z=0 and flat-shaded side walls. A depth of zero yields the front cap only.
func Extrude(s Shape, depth float32) *Mesh {
	pts, tris := Triangulate(s)
	m := &Mesh{}

	front := mgl32.Vec3{0, 0, 1}
	base := uint32(len(m.Positions))
	for _, p := range pts {
		m.addVertex(mgl32.Vec3{p[0], p[1], depth}, front)
	}
	for _, i := range tris {
		m.Indices = append(m.Indices, base+i)
	}
	if depth == 0 {
		return m
	}

	back := mgl32.Vec3{0, 0, -1}
	base = uint32(len(m.Positions))
	for _, p := range pts {
		m.addVertex(mgl32.Vec3{p[0], p[1], 0}, back)
	}
	for t := 0; t+2 < len(tris); t += 3 {
		m.Indices = append(m.Indices, base+tris[t], base+tris[t+2], base+tris[t+1])
	}

	walls := append([][]mgl32.Vec2{s.Outer}, s.Holes...)
	for _, c := range walls {
		for i := range c {
			p, q := c[i], c[(i+1)%len(c)]
			d := q.Sub(p)
			l := d.Len()
			if l == 0 {
				continue
			}
			n := mgl32.Vec3{d[1] / l, -d[0] / l, 0}
			a := m.addVertex(mgl32.Vec3{p[0], p[1], 0}, n)
			b := m.addVertex(mgl32.Vec3{q[0], q[1], 0}, n)
			cc := m.addVertex(mgl32.Vec3{q[0], q[1], depth}, n)
			dd := m.addVertex(mgl32.Vec3{p[0], p[1], depth}, n)
			m.Indices = append(m.Indices, a, b, cc, a, cc, dd)
		}
	}
	return m
}
