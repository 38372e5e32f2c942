// Package mesh contains the vertex data drawn by the demos.
package mesh

// FloatBytes is the size of one vertex component.
const FloatBytes = 4

// Layout lists the component count of each vertex attribute, in the order
// of their shader locations.
type Layout []int

// Components returns the number of floats in one vertex.
func (layout Layout) Components() int {
	n := 0
	for _, c := range layout {
		n += c
	}
	return n
}

// Stride returns the size of one vertex in bytes.
func (layout Layout) Stride() int { return layout.Components() * FloatBytes }

// Offsets returns the byte offset of each attribute within a vertex.
func (layout Layout) Offsets() []int {
	offsets := make([]int, len(layout))
	offset := 0
	for i, c := range layout {
		offsets[i] = offset
		offset += c * FloatBytes
	}
	return offsets
}

// Data is interleaved vertex data with optional indices.
type Data struct {
	Layout   Layout
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in Vertices.
func (data *Data) VertexCount() int {
	n := data.Layout.Components()
	if n == 0 {
		return 0
	}
	return len(data.Vertices) / n
}

// DrawCount returns the number of elements a draw call consumes.
func (data *Data) DrawCount() int {
	if len(data.Indices) > 0 {
		return len(data.Indices)
	}
	return data.VertexCount()
}
