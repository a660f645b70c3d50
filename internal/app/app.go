// Package app hosts the scene in a glfw window: it owns the GL renderer,
// turns window events into session calls and runs the frame loop.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"glyphglow/internal/game"
	"glyphglow/internal/graphics/renderables/cube"
	"glyphglow/internal/graphics/renderables/glyphs"
	"glyphglow/internal/graphics/renderables/helpers"
	"glyphglow/internal/graphics/renderables/overlay"
	"glyphglow/internal/graphics/renderer"
	"glyphglow/internal/input"
	"glyphglow/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/time/rate"
)

// slowFrame is the processing time above which a frame is reported.
const slowFrame = 16 * time.Millisecond

type Options struct {
	// Overlay shows the frame rate and font state in the corner.
	Overlay bool
}

// App is the application context. It is built once at startup; every
// callback and the loop reach the scene through it.
type App struct {
	window   *glfw.Window
	session  *game.Session
	renderer *renderer.Renderer

	fpsLimiter *game.FPSLimiter
	frames     game.FrameCounter
	slowFrames rate.Sometimes
}

// New builds the renderer for the session's scene and installs the window
// callbacks. The window's context must be current.
func New(window *glfw.Window, session *game.Session, o Options) (*App, error) {
	a := &App{
		window:     window,
		session:    session,
		fpsLimiter: game.NewFPSLimiter(nil),
		slowFrames: rate.Sometimes{Interval: time.Second},
	}

	rs := []renderer.Renderable{
		cube.NewCube(),
		helpers.NewHelpers(),
		glyphs.NewGlyphs(),
	}
	if o.Overlay {
		rs = append(rs, overlay.NewOverlay(a.statusLines))
	}
	r, err := renderer.NewRenderer(rs...)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	a.renderer = r

	a.resize(window.GetFramebufferSize())

	window.SetKeyCallback(a.onKey)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.resize(width, height)
	})
	window.SetRefreshCallback(func(w *glfw.Window) {
		a.render()
		w.SwapBuffers()
	})
	return a, nil
}

// Run loops until the window is asked to close.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	func() { defer profiling.Track("session.Update")(); a.session.Update() }()
	a.render()

	// Swap waits for vsync, so it is not counted as processing time.
	processing := time.Since(start)
	a.window.SwapBuffers()

	if processing > slowFrame {
		a.slowFrames.Do(func() {
			slog.Warn(fmt.Sprintf("Slow frame: %v (events %v, glyph build %v). Top tasks: %s",
				processing, profiling.SumWithPrefix("glfw."), profiling.SumWithPrefix("scene."), profiling.TopN(5)))
		})
	}
	if a.frames.Tick(time.Now()) {
		slog.Debug("Frame rate", "fps", a.frames.FPS())
	}

	a.fpsLimiter.Wait()
}

// render is shared by the loop and the refresh callback. Refreshes fire inside
// PollEvents, possibly after a key moved the cube, so the scene is synced here.
func (a *App) render() {
	a.renderer.Render(a.session.FrameScene())
}

// resize ignores empty framebuffers, as reported for minimized windows.
func (a *App) resize(width, height int) {
	if a.session.Resize(width, height) {
		a.renderer.UpdateViewport(width, height)
	}
}

func (a *App) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
		return
	}
	r, ok := keyRune(key, scancode)
	if !ok {
		return
	}
	a.session.HandleKey(r, keyState(action))
}

func (a *App) statusLines() []string {
	return a.session.StatusLines(a.frames.FPS())
}

// Dispose releases GL resources. The context must still be current.
func (a *App) Dispose() {
	a.renderer.Dispose()
}

// keyRune returns the character a printable key produces in the current
// keyboard layout.
func keyRune(key glfw.Key, scancode int) (rune, bool) {
	name := glfw.GetKeyName(key, scancode)
	r := []rune(name)
	if len(r) != 1 {
		return 0, false
	}
	return r[0], true
}

func keyState(a glfw.Action) input.KeyState {
	switch a {
	case glfw.Press:
		return input.KeyPress
	case glfw.Repeat:
		return input.KeyRepeat
	}
	return input.KeyRelease
}
