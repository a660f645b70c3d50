package fontload

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"glyphglow/internal/geometry"
)

type typefaceGlyph struct {
	HA float32 `json:"ha"`
	O  string  `json:"o"`
}

type typefaceFile struct {
	Glyphs     map[string]typefaceGlyph `json:"glyphs"`
	FamilyName string                   `json:"familyName"`
	Resolution float32                  `json:"resolution"`
}

// typeface is a font in the three.js typeface JSON format. Outlines are kept
// as command strings and parsed on demand.
type typeface struct {
	family string
	scale  float32
	glyphs map[rune]typefaceGlyph
}

func parseTypeface(data []byte) (*typeface, error) {
	var f typefaceFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode typeface: %w", err)
	}
	if f.Resolution <= 0 {
		return nil, fmt.Errorf("typeface resolution %v must be positive", f.Resolution)
	}
	if len(f.Glyphs) == 0 {
		return nil, fmt.Errorf("typeface %q has no glyphs", f.FamilyName)
	}
	t := &typeface{
		family: f.FamilyName,
		scale:  1 / f.Resolution,
		glyphs: make(map[rune]typefaceGlyph, len(f.Glyphs)),
	}
	for k, g := range f.Glyphs {
		r := []rune(k)
		if len(r) != 1 {
			continue
		}
		t.glyphs[r[0]] = g
	}
	return t, nil
}

func (t *typeface) Family() string {
	return t.family
}

func (t *typeface) Glyph(r rune) (geometry.Glyph, error) {
	g, ok := t.glyphs[r]
	if !ok {
		return geometry.Glyph{}, fmt.Errorf("%q: %w", r, ErrGlyphNotFound)
	}
	path, err := t.parseOutline(g.O)
	if err != nil {
		return geometry.Glyph{}, fmt.Errorf("outline of %q: %w", r, err)
	}
	return geometry.Glyph{Path: path, Advance: g.HA * t.scale}, nil
}

// parseOutline reads the command string. Curve commands list the end point
// before the control points: "q x y cx cy" and "b x y c1x c1y c2x c2y".
func (t *typeface) parseOutline(o string) (geometry.Path, error) {
	fields := strings.Fields(o)
	var path geometry.Path
	i := 0
	next := func(n int) ([]float32, error) {
		if i+n > len(fields) {
			return nil, fmt.Errorf("command %q at %d: want %d numbers", fields[i-1], i-1, n)
		}
		out := make([]float32, n)
		for k := range n {
			v, err := strconv.ParseFloat(fields[i+k], 32)
			if err != nil {
				return nil, fmt.Errorf("number at %d: %w", i+k, err)
			}
			out[k] = float32(v) * t.scale
		}
		i += n
		return out, nil
	}
	for i < len(fields) {
		cmd := fields[i]
		i++
		switch cmd {
		case "m":
			v, err := next(2)
			if err != nil {
				return nil, err
			}
			path.MoveTo(v[0], v[1])
		case "l":
			v, err := next(2)
			if err != nil {
				return nil, err
			}
			path.LineTo(v[0], v[1])
		case "q":
			v, err := next(4)
			if err != nil {
				return nil, err
			}
			path.QuadTo(v[2], v[3], v[0], v[1])
		case "b":
			v, err := next(6)
			if err != nil {
				return nil, err
			}
			path.CubeTo(v[2], v[3], v[4], v[5], v[0], v[1])
		case "z":
			// contours are closed implicitly
		default:
			return nil, fmt.Errorf("unknown command %q at %d", cmd, i-1)
		}
	}
	return path, nil
}
