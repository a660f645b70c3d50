package overlay

import (
	"glyphglow/internal/graphics"
	"glyphglow/internal/graphics/renderer"
	"glyphglow/internal/profiling"
	"glyphglow/internal/textatlas"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/gomono"
)

const margin = 8

var textColor = mgl32.Vec3{0.85, 0.85, 0.85}

// Overlay prints status lines in the top left corner of the window.
type Overlay struct {
	lines func() []string
	font  *graphics.FontRenderer
}

// NewOverlay creates an overlay showing whatever lines returns each frame.
func NewOverlay(lines func() []string) *Overlay {
	return &Overlay{lines: lines}
}

func (o *Overlay) Init() error {
	atlas, err := textatlas.Bake(gomono.TTF, textatlas.DefaultOptions())
	if err != nil {
		return err
	}
	o.font, err = graphics.NewFontRenderer(atlas)
	return err
}

func (o *Overlay) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.Overlay")()
	step := o.font.LineHeight()
	o.font.RenderLines(o.lines(), margin, margin+step, step, 1, textColor)
}

func (o *Overlay) Dispose() {
	if o.font != nil {
		o.font.Dispose()
	}
}

func (o *Overlay) SetViewport(width, height int) {
	o.font.SetViewport(width, height)
}
