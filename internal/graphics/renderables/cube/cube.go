package cube

import (
	"glyphglow/internal/graphics"
	"glyphglow/internal/graphics/renderer"
	"glyphglow/internal/profiling"
	"glyphglow/internal/shading"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Cube draws the glow cube.
type Cube struct {
	shader *graphics.Shader
	meshes *graphics.MeshCache
}

func NewCube() *Cube {
	return &Cube{meshes: graphics.NewMeshCache()}
}

func (c *Cube) Init() error {
	var err error
	c.shader, err = graphics.NewProgramShader(shading.GlowProgram())
	return err
}

func (c *Cube) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.Cube")()

	cube := ctx.Scene.Cube
	mesh := c.meshes.Get(cube.ID, func() *graphics.MeshBuffer {
		return graphics.UploadMesh(cube.Mesh)
	})

	c.shader.Use()
	c.shader.SetMatrix4("model", cube.ModelMatrix())
	c.shader.SetMatrix4("view", ctx.View)
	c.shader.SetMatrix4("proj", ctx.Proj)
	c.shader.SetVec3("glowColor", cube.Material.Color)
	c.shader.SetFloat("falloff", cube.Material.Falloff)

	if cube.Material.Transparent {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		defer gl.Disable(gl.BLEND)
	}
	mesh.Draw()
}

func (c *Cube) Dispose() {
	c.meshes.Dispose()
	if c.shader != nil {
		c.shader.Delete()
	}
}

func (c *Cube) SetViewport(width, height int) {}
