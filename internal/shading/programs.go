package shading

import "embed"

//go:embed shaders
var shaderFS embed.FS

// Program names a vertex and fragment stage pair.
type Program struct {
	Name     string
	Vertex   string
	Fragment string
}

func stage(name string) string {
	b, err := shaderFS.ReadFile("shaders/" + name)
	if err != nil {
		// embedded at build time; a miss is a packaging bug
		panic(err)
	}
	return string(b)
}

// Both surface materials run the same vertex stage; only the fragment stage differs.
var meshVertex = stage("mesh.vert")

// GlowProgram shades the cube.
func GlowProgram() Program {
	return Program{Name: "glow", Vertex: meshVertex, Fragment: stage("glow.frag")}
}

// LitProgram shades the text glyphs.
func LitProgram() Program {
	return Program{Name: "lit", Vertex: meshVertex, Fragment: stage("lit.frag")}
}

// LineProgram draws the unlit helpers with per-vertex colors.
func LineProgram() Program {
	return Program{Name: "line", Vertex: stage("line.vert"), Fragment: stage("line.frag")}
}

// TextProgram draws screen-space text from a single-channel glyph atlas.
func TextProgram() Program {
	return Program{Name: "text", Vertex: stage("text.vert"), Fragment: stage("text.frag")}
}
