package gldriver

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfinit/learngl/mesh"
)

// Mesh is mesh.Data uploaded to a vertex array.
// Attribute i of the layout is bound to shader location i.
type Mesh struct {
	VAO uint32
	VBO uint32
	IBO uint32

	Count int32
}

// Upload creates the buffers for data.
func Upload(data *mesh.Data) *Mesh {
	m := &Mesh{Count: int32(data.DrawCount())}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*mesh.FloatBytes, gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	if len(data.Indices) > 0 {
		gl.GenBuffers(1, &m.IBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.IBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)
	}

	stride := int32(data.Layout.Stride())
	offsets := data.Layout.Offsets()
	for i, components := range data.Layout {
		attrib := uint32(i)
		gl.VertexAttribPointer(attrib, int32(components), gl.FLOAT, false, stride, gl.PtrOffset(offsets[i]))
		gl.EnableVertexAttribArray(attrib)
	}

	gl.BindVertexArray(0)
	return m
}

// Draw draws the mesh as triangles with the active program.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	if m.IBO != 0 {
		gl.DrawElements(gl.TRIANGLES, m.Count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.Count)
	}
}

func (m *Mesh) Delete() {
	if m.IBO != 0 {
		gl.DeleteBuffers(1, &m.IBO)
	}
	gl.DeleteBuffers(1, &m.VBO)
	gl.DeleteVertexArrays(1, &m.VAO)
	*m = Mesh{}
}
