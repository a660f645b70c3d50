package scene

import (
	"errors"
	"testing"

	"glyphglow/internal/geometry"
	"glyphglow/internal/shading"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{
		Camera: CameraOptions{Position: mgl32.Vec3{0, 2, 5}, FOV: 75, Near: 0.1, Far: 1000, Width: 900, Height: 600},
		Cube:   CubeOptions{Size: 1, Color: mgl32.Vec3{1, 1, 1}, Falloff: shading.DefaultFalloff},
		Light:  LightOptions{Color: mgl32.Vec3{1, 1, 1}, Intensity: 1, Range: 100},
		Helpers: HelperOptions{
			AxesSize:      5,
			GridSize:      15,
			GridDivisions: 50,
		},
	}
}

type squareFont struct{}

func (squareFont) Glyph(r rune) (geometry.Glyph, error) {
	if r == '?' {
		return geometry.Glyph{}, errors.New("missing")
	}
	var p geometry.Path
	p.MoveTo(0, 0)
	p.LineTo(0.6, 0)
	p.LineTo(0.6, 0.7)
	p.LineTo(0, 0.7)
	return geometry.Glyph{Path: p, Advance: 0.7}, nil
}

func testSpecs() []GlyphSpec {
	return []GlyphSpec{
		{Text: "M", Position: mgl32.Vec3{-2.3, 0, 0}, Color: shading.HexColor(0xFFC87C), Specular: shading.SpecularLight},
		{Text: "9", Position: mgl32.Vec3{1.2, 0, 0}, Color: shading.HexColor(0x003783), Specular: shading.SpecularObject},
	}
}

func TestNew(t *testing.T) {
	s := New(testOptions())
	require.NotNil(t, s.Cube)
	require.NotNil(t, s.Light)
	assert.Equal(t, mgl32.Vec3{}, s.Cube.Position)
	assert.Equal(t, s.Cube.Position, s.Light.Position)
	assert.Equal(t, mgl32.Vec3{0, 2, 5}, s.Camera.Position)
	assert.InDelta(t, 1.5, s.Camera.Aspect, 1e-6)
	assert.True(t, s.Cube.Material.Transparent)
	assert.Equal(t, 12, s.Cube.Mesh.TriangleCount())
	assert.Empty(t, s.Glyphs())
	require.Len(t, s.Helpers, 2)
	assert.Equal(t, "axes", s.Helpers[0].Name)
	assert.Equal(t, "grid", s.Helpers[1].Name)
	assert.NotEqual(t, s.Cube.ID, s.Light.ID)
}

func TestNewWithoutHelpers(t *testing.T) {
	o := testOptions()
	o.Helpers = HelperOptions{}
	assert.Empty(t, New(o).Helpers)
}

func TestLightFollowsCube(t *testing.T) {
	s := New(testOptions())
	s.MoveCube(0.1)
	s.MoveCube(0.1)
	assert.NotEqual(t, s.Cube.Position, s.Light.Position, "light only moves on sync")
	s.SyncLight()
	assert.Equal(t, s.Cube.Position, s.Light.Position)
}

func TestMoveCameraHasNoBounds(t *testing.T) {
	s := New(testOptions())
	for range 1000 {
		s.MoveCamera(-0.1)
	}
	assert.InDelta(t, -100, s.Camera.Position.X(), 1e-2)
	assert.Equal(t, float32(2), s.Camera.Position.Y())
}

func TestResize(t *testing.T) {
	s := New(testOptions())
	require.True(t, s.Resize(1920, 1080))
	assert.Equal(t, float32(1920)/float32(1080), s.Camera.Aspect)

	t.Run("repeated resizes do not drift", func(t *testing.T) {
		for range 100 {
			s.Resize(1024, 768)
		}
		assert.Equal(t, float32(1024)/float32(768), s.Camera.Aspect)
	})
	t.Run("empty viewport keeps the aspect", func(t *testing.T) {
		before := s.Camera.Aspect
		assert.False(t, s.Resize(800, 0))
		assert.Equal(t, before, s.Camera.Aspect)
	})
}

func TestCameraMatrices(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 2, 5}, 75, 0.1, 1000, 800, 400)
	eye := c.ViewMatrix().Mul4x1(mgl32.Vec4{1, 2, 5, 1})
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, eye)

	want := mgl32.Perspective(mgl32.DegToRad(75), 2, 0.1, 1000)
	assert.Equal(t, want, c.ProjectionMatrix())
}

func TestAddGlyphsOnce(t *testing.T) {
	s := New(testOptions())
	gs, err := BuildGlyphs(squareFont{}, testSpecs(), geometry.TextOptions{Size: 1, Depth: 0.2, CurveSegments: 12}, 32)
	require.NoError(t, err)
	require.NoError(t, s.AddGlyphs(gs...))
	assert.ErrorIs(t, s.AddGlyphs(gs...), ErrGlyphsInstalled)
	assert.Len(t, s.Glyphs(), 2)

	// the returned slice is a copy
	got := s.Glyphs()
	got[0] = nil
	assert.NotNil(t, s.Glyphs()[0])
}

func TestBuildGlyphs(t *testing.T) {
	gs, err := BuildGlyphs(squareFont{}, testSpecs(), geometry.TextOptions{Size: 1, Depth: 0.2, CurveSegments: 12}, 32)
	require.NoError(t, err)
	require.Len(t, gs, 2)

	m, nine := gs[0], gs[1]
	assert.Equal(t, "M", m.Text())
	assert.Equal(t, mgl32.Vec3{-2.3, 0, 0}, m.Position())
	assert.Equal(t, shading.HexColor(0xFFC87C), m.Color())
	assert.Equal(t, shading.SpecularLight, m.Material().Specular)

	assert.Equal(t, "9", nine.Text())
	assert.Equal(t, mgl32.Vec3{1.2, 0, 0}, nine.Position())
	assert.Equal(t, shading.HexColor(0x003783), nine.Color())
	assert.Equal(t, shading.SpecularObject, nine.Material().Specular)

	assert.Equal(t, m.Material().AmbientIntensity, nine.Material().AmbientIntensity)
	assert.InDelta(t, 0.259, m.Material().AmbientIntensity, 1e-7)
	assert.NotEqual(t, m.ID(), nine.ID())

	lo, hi := m.Mesh().Bounds()
	assert.InDelta(t, 0, lo.Z(), 1e-6)
	assert.InDelta(t, 0.2, hi.Z(), 1e-6)

	translated := m.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.Equal(t, mgl32.Vec4{-2.3, 0, 0, 1}, translated)
}

func TestBuildGlyphsMissingCharacter(t *testing.T) {
	_, err := BuildGlyphs(squareFont{}, []GlyphSpec{{Text: "?"}}, geometry.TextOptions{Size: 1}, 32)
	assert.ErrorContains(t, err, `build glyph "?"`)
}
