package fontload

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"glyphglow/internal/geometry"
)

// sfntFont reads outlines from an OpenType or TrueType font. Loading at a
// ppem equal to the units per em makes 26.6 coordinates exact font units.
type sfntFont struct {
	f      *opentype.Font
	buf    sfnt.Buffer
	ppem   fixed.Int26_6
	scale  float32
	family string
}

func parseOpenType(data []byte, collection bool) (*sfntFont, error) {
	var f *opentype.Font
	if collection {
		c, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse font collection: %w", err)
		}
		f, err = c.Font(0)
		if err != nil {
			return nil, fmt.Errorf("font collection: %w", err)
		}
	} else {
		var err error
		f, err = opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
	}

	upem := f.UnitsPerEm()
	if upem <= 0 {
		return nil, fmt.Errorf("font units per em %d must be positive", upem)
	}
	s := &sfntFont{
		f:     f,
		ppem:  fixed.I(int(upem)),
		scale: 1 / float32(upem),
	}
	// A missing name table is not fatal.
	s.family, _ = f.Name(&s.buf, sfnt.NameIDFamily)
	return s, nil
}

func (s *sfntFont) Family() string {
	return s.family
}

func (s *sfntFont) Glyph(r rune) (geometry.Glyph, error) {
	idx, err := s.f.GlyphIndex(&s.buf, r)
	if err != nil {
		return geometry.Glyph{}, fmt.Errorf("glyph index of %q: %w", r, err)
	}
	if idx == 0 {
		return geometry.Glyph{}, fmt.Errorf("%q: %w", r, ErrGlyphNotFound)
	}
	segs, err := s.f.LoadGlyph(&s.buf, idx, s.ppem, nil)
	if err != nil {
		return geometry.Glyph{}, fmt.Errorf("load glyph %q: %w", r, err)
	}
	adv, err := s.f.GlyphAdvance(&s.buf, idx, s.ppem, font.HintingNone)
	if err != nil {
		return geometry.Glyph{}, fmt.Errorf("advance of %q: %w", r, err)
	}

	var path geometry.Path
	for _, seg := range segs {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := s.point(a[0])
			path.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := s.point(a[0])
			path.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := s.point(a[0])
			x, y := s.point(a[1])
			path.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := s.point(a[0])
			c2x, c2y := s.point(a[1])
			x, y := s.point(a[2])
			path.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	return geometry.Glyph{Path: path, Advance: float32(adv) / 64 * s.scale}, nil
}

// point converts to em units. sfnt has Y pointing down.
func (s *sfntFont) point(p fixed.Point26_6) (float32, float32) {
	return float32(p.X) / 64 * s.scale, -float32(p.Y) / 64 * s.scale
}
