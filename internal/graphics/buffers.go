package graphics

import (
	"glyphglow/internal/geometry"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MeshBuffer is a mesh or line set resident on the GPU.
type MeshBuffer struct {
	vao, vbo, ebo uint32
	count         int32
	mode          uint32
}

// UploadMesh stores an indexed triangle mesh: attribute 0 is the position,
// attribute 1 the normal.
func UploadMesh(m *geometry.Mesh) *MeshBuffer {
	b := &MeshBuffer{count: int32(len(m.Indices)), mode: gl.TRIANGLES}
	b.upload(m.Interleave(), geometry.FloatsPerVertex)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	if len(m.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}
	gl.BindVertexArray(0)
	return b
}

// UploadLines stores a line list: attribute 0 is the position, attribute 1
// the color.
func UploadLines(l *geometry.Lines) *MeshBuffer {
	b := &MeshBuffer{count: int32(len(l.Positions)), mode: gl.LINES}
	b.upload(l.Interleave(), geometry.FloatsPerLineVertex)
	gl.BindVertexArray(0)
	return b
}

// upload leaves the VAO bound so the caller can attach an index buffer.
func (b *MeshBuffer) upload(vertices []float32, stride int) {
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	}

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(stride*4), 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(stride*4), 3*4)
}

// Draw issues one draw call for the whole buffer.
func (b *MeshBuffer) Draw() {
	if b.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	if b.ebo != 0 {
		gl.DrawElementsWithOffset(b.mode, b.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(b.mode, 0, b.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GPU objects.
func (b *MeshBuffer) Delete() {
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}
