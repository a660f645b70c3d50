package game

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"glyphglow/internal/config"
	"glyphglow/internal/fontload"
	"glyphglow/internal/geometry"
	"glyphglow/internal/input"
	"glyphglow/internal/shading"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxFont draws every character except '?' as a unit-ish box.
type boxFont struct{}

func (boxFont) Family() string { return "Box" }

func (boxFont) Glyph(r rune) (geometry.Glyph, error) {
	if r == '?' {
		return geometry.Glyph{}, fontload.ErrGlyphNotFound
	}
	var p geometry.Path
	p.MoveTo(0, 0)
	p.LineTo(0.5, 0)
	p.LineTo(0.5, 0.7)
	p.LineTo(0, 0.7)
	return geometry.Glyph{Path: p, Advance: 0.6}, nil
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(old) })
	return &buf
}

func TestSessionFontSuccess(t *testing.T) {
	logBuf := captureLog(t)
	s, err := NewSession(config.Default(), fontload.Resolved(boxFont{}))
	require.NoError(t, err)
	assert.Empty(t, s.Scene.Glyphs(), "glyphs wait for the first update")

	s.Update()

	require.True(t, s.FontSettled())
	gs := s.Scene.Glyphs()
	require.Len(t, gs, 2)
	assert.Equal(t, mgl32.Vec3{-2.3, 0, 0}, gs[0].Position())
	assert.Equal(t, mgl32.Vec3{1.2, 0, 0}, gs[1].Position())
	assert.Equal(t, shading.HexColor(0xFFC87C), gs[0].Color())
	assert.Equal(t, shading.HexColor(0x003783), gs[1].Color())
	assert.Equal(t, shading.SpecularLight, gs[0].Material().Specular)
	assert.Equal(t, shading.SpecularObject, gs[1].Material().Specular)
	assert.Equal(t, float32(32), gs[0].Material().Shininess)
	assert.Equal(t, gs[0].Material().AmbientIntensity, gs[1].Material().AmbientIntensity)
	assert.Contains(t, logBuf.String(), `msg="Glyphs installed" family=Box count=2`)

	// glyphs never move, whatever the keys do
	for _, k := range "wwdsa" {
		s.HandleKey(k, input.KeyPress)
		s.Update()
	}
	assert.Equal(t, mgl32.Vec3{-2.3, 0, 0}, s.Scene.Glyphs()[0].Position())
	assert.Equal(t, mgl32.Vec3{1.2, 0, 0}, s.Scene.Glyphs()[1].Position())
}

func TestSessionFontFailure(t *testing.T) {
	logBuf := captureLog(t)
	s, err := NewSession(config.Default(), fontload.Rejected(errors.New("connection refused")))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		for range 3 {
			s.Update()
		}
	})

	assert.Empty(t, s.Scene.Glyphs())
	assert.NotNil(t, s.Scene.Cube)
	assert.NotNil(t, s.Scene.Light)
	assert.NotNil(t, s.Scene.Camera)
	assert.Equal(t, 1, strings.Count(logBuf.String(), "level=ERROR"))
	assert.Contains(t, logBuf.String(), `msg="Font load failed" error="connection refused"`)
}

func TestSessionFontFetchFailureLogsOnce(t *testing.T) {
	logBuf := captureLog(t)
	const url = "https://fonts.example.com/helvetiker.json"
	hc := &http.Client{}
	httpmock.ActivateNonDefault(hc)
	t.Cleanup(httpmock.DeactivateAndReset)
	httpmock.RegisterResponder("GET", url, httpmock.NewErrorResponder(errors.New("connection refused")))

	s, err := NewSession(config.Default(), fontload.Load(context.Background(), fontload.NewClient(hc), url))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		s.Update()
		return s.FontSettled()
	}, 5*time.Second, 5*time.Millisecond)

	assert.Empty(t, s.Scene.Glyphs())
	assert.Equal(t, 1, strings.Count(logBuf.String(), "level=ERROR"), logBuf.String())
	assert.Contains(t, logBuf.String(), `msg="Font load failed"`)
	assert.Contains(t, logBuf.String(), "connection refused")
}

func TestSessionMissingGlyph(t *testing.T) {
	logBuf := captureLog(t)
	cfg := config.Default()
	cfg.Text.Glyphs[1].Text = "?"
	s, err := NewSession(cfg, fontload.Resolved(boxFont{}))
	require.NoError(t, err)

	s.Update()

	assert.Empty(t, s.Scene.Glyphs())
	assert.Equal(t, 1, strings.Count(logBuf.String(), "level=ERROR"))
	assert.Contains(t, logBuf.String(), "glyph not found")
}

func TestSessionPendingFont(t *testing.T) {
	captureLog(t)
	s, err := NewSession(config.Default(), fontload.Load(t.Context(), fontload.NewClient(nil), "http://127.0.0.1:0/font.json"))
	require.NoError(t, err)
	// the scene renders without glyphs while the font is in flight
	s.Update()
	assert.Equal(t, s.Scene.Cube.Position, s.Scene.Light.Position)
}

func TestSessionKeys(t *testing.T) {
	captureLog(t)
	s, err := NewSession(config.Default(), fontload.Rejected(errors.New("offline")))
	require.NoError(t, err)

	for _, k := range "wwwsx" {
		s.HandleKey(k, input.KeyPress)
	}
	for _, k := range "dddaa" {
		s.HandleKey(k, input.KeyPress)
	}
	s.Update()

	assert.InDelta(t, 0.2, s.Scene.Cube.Position.Y(), 1e-6)
	assert.InDelta(t, 0.1, s.Scene.Camera.Position.X(), 1e-6)
	assert.Equal(t, s.Scene.Cube.Position, s.Scene.Light.Position)
	assert.Equal(t, 1, s.Frames)
}

func TestSessionFrameSceneSyncsLight(t *testing.T) {
	captureLog(t)
	s, err := NewSession(config.Default(), fontload.Rejected(errors.New("offline")))
	require.NoError(t, err)
	s.Update()

	// a window refresh can draw between a key event and the next update
	require.True(t, s.HandleKey('w', input.KeyPress))
	assert.False(t, s.HandleKey('w', input.KeyRelease))
	sc := s.FrameScene()

	assert.InDelta(t, 0.1, sc.Cube.Position.Y(), 1e-6)
	assert.Equal(t, sc.Cube.Position, sc.Light.Position)
}

func TestSessionCustomBindings(t *testing.T) {
	captureLog(t)
	cfg := config.Default()
	cfg.Input.Step = 0.5
	cfg.Input.Bindings = map[string]string{"k": "cube_up"}
	s, err := NewSession(cfg, fontload.Rejected(errors.New("offline")))
	require.NoError(t, err)

	assert.False(t, s.HandleKey('w', input.KeyPress))
	assert.True(t, s.HandleKey('k', input.KeyPress))
	assert.Equal(t, float32(0.5), s.Scene.Cube.Position.Y())

	cfg.Input.Bindings = map[string]string{"k": "jump"}
	_, err = NewSession(cfg, fontload.Rejected(errors.New("offline")))
	assert.ErrorContains(t, err, "key bindings")
}

func TestSessionResize(t *testing.T) {
	captureLog(t)
	s, err := NewSession(config.Default(), fontload.Rejected(errors.New("offline")))
	require.NoError(t, err)
	assert.InDelta(t, 1.5, s.Scene.Camera.Aspect, 1e-6)

	assert.True(t, s.Resize(1280, 720))
	assert.Equal(t, float32(1280)/float32(720), s.Scene.Camera.Aspect)
	assert.False(t, s.Resize(1280, 0))
	assert.Equal(t, float32(1280)/float32(720), s.Scene.Camera.Aspect)
}

func TestSceneOptions(t *testing.T) {
	cfg := config.Default()
	o := SceneOptions(cfg)
	assert.Equal(t, mgl32.Vec3{0, 2, 5}, o.Camera.Position)
	assert.Equal(t, float32(75), o.Camera.FOV)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, o.Cube.Color)
	assert.Equal(t, float32(100), o.Light.Range)
	assert.Equal(t, float32(5), o.Helpers.AxesSize)
	assert.Equal(t, 50, o.Helpers.GridDivisions)

	cfg.Helpers.Axes = false
	cfg.Helpers.Grid = false
	o = SceneOptions(cfg)
	assert.Zero(t, o.Helpers)
}

func TestGlyphSpecsRejectsUnknownSpecular(t *testing.T) {
	cfg := config.Default()
	cfg.Text.Glyphs[0].Specular = "mirror"
	_, err := GlyphSpecs(cfg)
	assert.ErrorContains(t, err, `unknown specular mode "mirror"`)
}

func TestFPSLimiter(t *testing.T) {
	t.Run("uncapped returns at once", func(t *testing.T) {
		f := NewFPSLimiter(func() int { return 0 })
		assert.Zero(t, f.Budget())
		assert.Zero(t, f.Wait())
	})
	t.Run("capped frames take at least the budget", func(t *testing.T) {
		f := NewFPSLimiter(func() int { return 200 })
		assert.Equal(t, 5*time.Millisecond, f.Budget())
		start := time.Now()
		for range 4 {
			f.Wait()
		}
		assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
	})
	t.Run("hitch resyncs the schedule", func(t *testing.T) {
		f := NewFPSLimiter(func() int { return 1000 })
		f.Wait()
		time.Sleep(5 * time.Millisecond)
		f.Wait()
		assert.Equal(t, 1, f.Hitches)
	})
	t.Run("reads the render settings by default", func(t *testing.T) {
		defer config.SetFPSLimit(config.GetFPSLimit())
		config.SetFPSLimit(50)
		assert.Equal(t, 20*time.Millisecond, NewFPSLimiter(nil).Budget())
	})
}

func TestStatusLines(t *testing.T) {
	captureLog(t)
	t.Run("loading", func(t *testing.T) {
		s, err := NewSession(config.Default(), fontload.Load(t.Context(), fontload.NewClient(nil), "http://127.0.0.1:0/font.json"))
		require.NoError(t, err)
		lines := s.StatusLines(59.6)
		require.Len(t, lines, 3)
		assert.Equal(t, "60 fps", lines[0])
	})
	t.Run("ready", func(t *testing.T) {
		s, err := NewSession(config.Default(), fontload.Resolved(boxFont{}))
		require.NoError(t, err)
		s.Update()
		s.HandleKey('w', input.KeyPress)
		assert.Equal(t, []string{"60 fps", "font: Box", "cube y +0.1  camera x +0.0"}, s.StatusLines(60))
	})
	t.Run("failed", func(t *testing.T) {
		s, err := NewSession(config.Default(), fontload.Rejected(errors.New("offline")))
		require.NoError(t, err)
		s.Update()
		assert.Equal(t, "font: unavailable", s.StatusLines(0)[1])
	})
}

func TestFrameCounter(t *testing.T) {
	var c FrameCounter
	start := time.Unix(100, 0)
	for i := range 30 {
		assert.False(t, c.Tick(start.Add(time.Duration(i)*time.Second/30)))
	}
	assert.True(t, c.Tick(start.Add(time.Second)))
	assert.InDelta(t, 31, c.FPS(), 1e-9)
	assert.False(t, c.Tick(start.Add(time.Second+time.Millisecond)))
	assert.InDelta(t, 31, c.FPS(), 1e-9)
}
