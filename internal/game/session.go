package game

import (
	"fmt"
	"log/slog"

	"glyphglow/internal/config"
	"glyphglow/internal/fontload"
	"glyphglow/internal/geometry"
	"glyphglow/internal/input"
	"glyphglow/internal/profiling"
	"glyphglow/internal/scene"
)

// Session is the window-independent part of the application: the scene, the
// key bindings acting on it and the pending font. Every method runs on the
// render loop goroutine.
type Session struct {
	Scene *scene.Scene
	Input *input.InputManager

	font      *fontload.Future
	specs     []scene.GlyphSpec
	text      geometry.TextOptions
	shininess float32

	fontFamily string
	fontErr    error

	Frames int
}

// NewSession builds the scene from cfg and attaches the font continuations to
// font. Glyphs appear on the first Update after the font has arrived.
func NewSession(cfg config.Config, font *fontload.Future) (*Session, error) {
	specs, err := GlyphSpecs(cfg)
	if err != nil {
		return nil, err
	}
	sc := scene.New(SceneOptions(cfg))
	im := input.NewInputManager(sc, cfg.Input.Step)
	if len(cfg.Input.Bindings) > 0 {
		if err := im.Rebind(cfg.Input.Bindings); err != nil {
			return nil, fmt.Errorf("key bindings: %w", err)
		}
	}

	s := &Session{
		Scene:     sc,
		Input:     im,
		font:      font,
		specs:     specs,
		text:      textOptions(cfg),
		shininess: cfg.Text.Shininess,
	}
	font.Then(s.installGlyphs, s.fontFailed)
	return s, nil
}

// HandleKey forwards a key event to the bindings and reports whether it
// moved anything.
func (s *Session) HandleKey(key rune, state input.KeyState) bool {
	return s.Input.HandleKeyEvent(key, state)
}

// Resize updates the camera for a new framebuffer size.
func (s *Session) Resize(width, height int) bool {
	return s.Scene.Resize(width, height)
}

// Update runs the per-frame scene work that precedes drawing.
func (s *Session) Update() {
	func() {
		defer profiling.Track("font.Dispatch")()
		s.font.Dispatch()
	}()
	s.Scene.SyncLight()
	s.Frames++
}

// FrameScene returns the scene ready to draw, with the light on the cube.
func (s *Session) FrameScene() *scene.Scene {
	s.Scene.SyncLight()
	return s.Scene
}

// FontSettled reports whether the font load has finished either way.
func (s *Session) FontSettled() bool {
	return s.font.Settled()
}

func (s *Session) installGlyphs(f fontload.Font) {
	defer profiling.Track("scene.BuildGlyphs")()
	glyphs, err := scene.BuildGlyphs(f, s.specs, s.text, s.shininess)
	if err != nil {
		slog.Error("Failed to build glyphs", "family", f.Family(), "error", err)
		return
	}
	if err := s.Scene.AddGlyphs(glyphs...); err != nil {
		slog.Error("Failed to add glyphs", "error", err)
		return
	}
	s.fontFamily = f.Family()
	slog.Info("Glyphs installed", "family", f.Family(), "count", len(glyphs))
}

func (s *Session) fontFailed(err error) {
	s.fontErr = err
	slog.Error("Font load failed", "error", err)
}

// StatusLines describes the session for the on-screen overlay.
func (s *Session) StatusLines(fps float64) []string {
	font := "loading"
	switch {
	case s.fontErr != nil:
		font = "unavailable"
	case s.fontFamily != "":
		font = s.fontFamily
	case s.FontSettled():
		font = "no glyphs"
	}
	c, cam := s.Scene.Cube.Position, s.Scene.Camera.Position
	return []string{
		fmt.Sprintf("%.0f fps", fps),
		fmt.Sprintf("font: %s", font),
		fmt.Sprintf("cube y %+.1f  camera x %+.1f", c.Y(), cam.X()),
	}
}
