package graphics

import (
	"fmt"

	"glyphglow/internal/shading"
	"glyphglow/internal/textatlas"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// FontRenderer draws screen-space text from a baked atlas.
type FontRenderer struct {
	atlas      *textatlas.Atlas
	texture    uint32
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer uploads the atlas and compiles the text program.
func NewFontRenderer(atlas *textatlas.Atlas) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewProgramShader(shading.TextProgram())
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{
		atlas:   atlas,
		texture: UploadAlphaTexture(atlas.Image),
		shader:  shader,
	}
	fr.initGL()
	return fr, nil
}

func (fr *FontRenderer) initGL() {
	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, textatlas.FloatsPerVertex, gl.FLOAT, false, textatlas.FloatsPerVertex*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// SetViewport sets a pixel projection with the origin at the top left.
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// LineHeight returns the baked line advance in pixels.
func (fr *FontRenderer) LineHeight() float32 {
	return fr.atlas.LineHeight
}

// RenderLines draws lines of text in a single pass to minimize GL state
// changes. The first baseline is at (x, y); each following line is lineStep
// pixels lower.
func (fr *FontRenderer) RenderLines(lines []string, x, y, lineStep, scale float32, color mgl32.Vec3) {
	var vertices []float32
	for _, line := range lines {
		vertices = append(vertices, fr.atlas.Layout(line, x, y, scale)...)
		y += lineStep
	}
	if len(vertices) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVec3("textColor", color)
	fr.shader.SetMatrix4("projection", fr.projection)
	fr.shader.SetInt("atlas", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	// Orphan the buffer to avoid GPU stalls on dynamic updates
	size := len(vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/textatlas.FloatsPerVertex))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// Dispose releases the GL objects.
func (fr *FontRenderer) Dispose() {
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	if fr.texture != 0 {
		gl.DeleteTextures(1, &fr.texture)
	}
	fr.shader.Delete()
}
