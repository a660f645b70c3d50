package glyphs

import (
	"glyphglow/internal/graphics"
	"glyphglow/internal/graphics/renderer"
	"glyphglow/internal/profiling"
	"glyphglow/internal/shading"
)

// Glyphs draws the extruded text with the lit program. Meshes are uploaded
// the first frame a glyph is seen; before the font arrives there is nothing
// to draw.
type Glyphs struct {
	shader *graphics.Shader
	meshes *graphics.MeshCache
}

func NewGlyphs() *Glyphs {
	return &Glyphs{meshes: graphics.NewMeshCache()}
}

func (g *Glyphs) Init() error {
	var err error
	g.shader, err = graphics.NewProgramShader(shading.LitProgram())
	return err
}

func (g *Glyphs) Render(ctx renderer.RenderContext) {
	glyphs := ctx.Scene.Glyphs()
	if len(glyphs) == 0 {
		return
	}
	defer profiling.Track("renderer.Glyphs")()

	light := ctx.Scene.Light
	g.shader.Use()
	g.shader.SetMatrix4("view", ctx.View)
	g.shader.SetMatrix4("proj", ctx.Proj)
	g.shader.SetVec3("lightPos", light.Position)
	g.shader.SetVec3("viewPos", ctx.Scene.Camera.Position)

	for _, glyph := range glyphs {
		mesh := g.meshes.Get(glyph.ID(), func() *graphics.MeshBuffer {
			return graphics.UploadMesh(glyph.Mesh())
		})
		m := glyph.Material()
		g.shader.SetMatrix4("model", glyph.ModelMatrix())
		g.shader.SetFloat("ambientIntensity", m.AmbientIntensity)
		g.shader.SetVec3("objectColor", m.Color)
		g.shader.SetVec3("specularColor", m.SpecularColor(light.Color))
		g.shader.SetFloat("shininess", m.Shininess)
		mesh.Draw()
	}
}

func (g *Glyphs) Dispose() {
	g.meshes.Dispose()
	if g.shader != nil {
		g.shader.Delete()
	}
}

func (g *Glyphs) SetViewport(width, height int) {}
