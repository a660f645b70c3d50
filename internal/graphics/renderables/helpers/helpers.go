package helpers

import (
	"glyphglow/internal/graphics"
	"glyphglow/internal/graphics/renderer"
	"glyphglow/internal/profiling"
	"glyphglow/internal/shading"
)

// Helpers draws the unlit axes and grid line sets.
type Helpers struct {
	shader *graphics.Shader
	meshes *graphics.MeshCache
}

func NewHelpers() *Helpers {
	return &Helpers{meshes: graphics.NewMeshCache()}
}

func (h *Helpers) Init() error {
	var err error
	h.shader, err = graphics.NewProgramShader(shading.LineProgram())
	return err
}

func (h *Helpers) Render(ctx renderer.RenderContext) {
	if len(ctx.Scene.Helpers) == 0 {
		return
	}
	defer profiling.Track("renderer.Helpers")()

	h.shader.Use()
	h.shader.SetMatrix4("view", ctx.View)
	h.shader.SetMatrix4("proj", ctx.Proj)
	for _, helper := range ctx.Scene.Helpers {
		h.meshes.Get(helper.ID, func() *graphics.MeshBuffer {
			return graphics.UploadLines(helper.Lines)
		}).Draw()
	}
}

func (h *Helpers) Dispose() {
	h.meshes.Dispose()
	if h.shader != nil {
		h.shader.Delete()
	}
}

func (h *Helpers) SetViewport(width, height int) {}
