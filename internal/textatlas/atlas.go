// Package textatlas bakes a font into a single-channel glyph atlas and lays
// out screen-space text quads against it. Uploading and drawing is left to
// the GL side.
package textatlas

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FloatsPerVertex is the quad vertex layout: screen x, y then atlas u, v.
const FloatsPerVertex = 4

// Character describes a single character's placement and metrics within the atlas
type Character struct {
	// Pixel coordinates of the glyph in the atlas image (top-left origin)
	AtlasX, AtlasY float32
	// Glyph bitmap size in pixels
	Width, Height float32
	// Bearing (offset from baseline) in pixels
	BearingX, BearingY float32
	// Advance in pixels
	Advance float32
}

// Atlas is a baked glyph set.
type Atlas struct {
	Image      *image.Alpha
	Characters map[rune]Character
	LineHeight float32
}

// Options control baking.
type Options struct {
	Pixels  int // glyph size in pixels
	Width   int // atlas width; the height grows to fit
	Padding int
	First   rune
	Last    rune
}

// DefaultOptions bakes printable ASCII at 18 pixels.
func DefaultOptions() Options {
	return Options{Pixels: 18, Width: 256, Padding: 1, First: 32, Last: 126}
}

// Bake renders every rune in [o.First, o.Last] of the TrueType or OpenType
// font ttf into a fresh atlas. Runes the font lacks are skipped.
func Bake(ttf []byte, o Options) (*Atlas, error) {
	if o.Pixels <= 0 || o.Width <= 0 || o.Last < o.First {
		return nil, errors.New("invalid atlas options")
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(o.Pixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	type baked struct {
		r       rune
		dr      image.Rectangle
		mask    image.Image
		maskp   image.Point
		advance fixed.Int26_6
	}
	var glyphs []baked
	for r := o.First; r <= o.Last; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, baked{r, dr, mask, maskp, advance})
	}
	if len(glyphs) == 0 {
		return nil, errors.New("font has no glyphs in range")
	}

	// First pass: pack in rows to find the atlas height
	type slot struct{ x, y int }
	slots := make([]slot, len(glyphs))
	offsetX, offsetY, rowHeight := 0, 0, 0
	for i, g := range glyphs {
		gw, gh := g.dr.Dx(), g.dr.Dy()
		if gw > o.Width {
			return nil, fmt.Errorf("glyph %q is wider than the atlas", g.r)
		}
		if offsetX+gw > o.Width {
			offsetX = 0
			offsetY += rowHeight + o.Padding
			rowHeight = 0
		}
		slots[i] = slot{offsetX, offsetY}
		offsetX += gw + o.Padding
		rowHeight = max(rowHeight, gh)
	}
	atlasH := max(offsetY+rowHeight, 1)

	// Second pass: render each glyph into the atlas and record metrics
	img := image.NewAlpha(image.Rect(0, 0, o.Width, atlasH))
	chars := make(map[rune]Character, len(glyphs))
	for i, g := range glyphs {
		gw, gh := g.dr.Dx(), g.dr.Dy()
		c := Character{
			AtlasX:   float32(slots[i].x),
			AtlasY:   float32(slots[i].y),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  float32(math.Round(float64(g.advance) / 64.0)),
		}
		if gw > 0 && gh > 0 && g.mask != nil {
			dst := image.Rect(slots[i].x, slots[i].y, slots[i].x+gw, slots[i].y+gh)
			draw.Draw(img, dst, g.mask, g.maskp, draw.Src)
		}
		chars[g.r] = c
	}

	m := face.Metrics()
	return &Atlas{
		Image:      img,
		Characters: chars,
		LineHeight: float32(m.Height.Round()),
	}, nil
}

// Size returns the atlas image size in pixels.
func (a *Atlas) Size() (int, int) {
	b := a.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Measure returns the width and the tallest glyph height of text in pixels.
func (a *Atlas) Measure(text string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range text {
		c, ok := a.Characters[r]
		if !ok {
			c = a.Characters[' ']
		}
		width += c.Advance * scale
		maxH = max(maxH, c.Height*scale)
	}
	return width, maxH
}

// Layout returns two triangles per drawable character with the baseline at
// y, in a Y-down pixel space. Missing characters advance like a space.
func (a *Atlas) Layout(text string, x, y, scale float32) []float32 {
	aw, ah := a.Size()
	vertices := make([]float32, 0, len(text)*6*FloatsPerVertex)
	for _, r := range text {
		c, ok := a.Characters[r]
		if !ok {
			x += a.Characters[' '].Advance * scale
			continue
		}
		if c.Width > 0 && c.Height > 0 {
			vertices = append(vertices, quad(c, x, y, scale, float32(aw), float32(ah))...)
		}
		x += c.Advance * scale
	}
	return vertices
}

func quad(c Character, x, y, scale, aw, ah float32) []float32 {
	xPos := x + c.BearingX*scale
	yPos := y - c.BearingY*scale
	w := c.Width * scale
	h := c.Height * scale

	u := c.AtlasX / aw
	v := c.AtlasY / ah
	du := c.Width / aw
	dv := c.Height / ah

	// Screen y grows downwards, so these wind counter-clockwise once a
	// top-left origin projection flips them.
	return []float32{
		xPos, yPos + h, u, v + dv,
		xPos + w, yPos, u + du, v,
		xPos, yPos, u, v,

		xPos, yPos + h, u, v + dv,
		xPos + w, yPos + h, u + du, v + dv,
		xPos + w, yPos, u + du, v,
	}
}
