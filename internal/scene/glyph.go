package scene

import (
	"fmt"

	"glyphglow/internal/geometry"
	"glyphglow/internal/shading"

	"github.com/go-gl/mathgl/mgl32"
)

// TextGlyph is an extruded character. It has no setters: once built it never
// moves and never changes color.
type TextGlyph struct {
	id        string
	text      string
	transform Transform
	material  shading.LitMaterial
	mesh     *geometry.Mesh
}

func NewTextGlyph(text string, position mgl32.Vec3, material shading.LitMaterial, mesh *geometry.Mesh) *TextGlyph {
	return &TextGlyph{
		id:        newNodeID(),
		text:      text,
		transform: Transform{Position: position},
		material:  material,
		mesh:      mesh,
	}
}

func (g *TextGlyph) ID() string                    { return g.id }
func (g *TextGlyph) Text() string                  { return g.text }
func (g *TextGlyph) Position() mgl32.Vec3          { return g.transform.Position }
func (g *TextGlyph) Color() mgl32.Vec3             { return g.material.Color }
func (g *TextGlyph) Material() shading.LitMaterial { return g.material }
func (g *TextGlyph) Mesh() *geometry.Mesh          { return g.mesh }

func (g *TextGlyph) ModelMatrix() mgl32.Mat4 { return g.transform.ModelMatrix() }

// GlyphSpec describes one glyph to build once the font is available.
type GlyphSpec struct {
	Text     string
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Specular shading.SpecularMode
}

// BuildGlyphs extrudes every spec with the same text options. All glyphs
// share one ambient intensity and one shininess.
func BuildGlyphs(src geometry.GlyphSource, specs []GlyphSpec, opts geometry.TextOptions, shininess float32) ([]*TextGlyph, error) {
	out := make([]*TextGlyph, 0, len(specs))
	for _, s := range specs {
		mesh, err := geometry.Text(src, s.Text, opts)
		if err != nil {
			return nil, fmt.Errorf("build glyph %q: %w", s.Text, err)
		}
		mat := shading.LitMaterial{
			Color:            s.Color,
			Specular:         s.Specular,
			Shininess:        shininess,
			AmbientIntensity: shading.AmbientIntensity,
		}
		out = append(out, NewTextGlyph(s.Text, s.Position, mat, mesh))
	}
	return out, nil
}
